package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/content"
	"github.com/folio/internal/service"
	"github.com/folio/internal/view"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	contextUserIDKey   = "user_id"
)

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login 处理登录表单，成功后写入会话并跳转到面板
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := a.auth.Verify(username, password)
	if err != nil {
		status := http.StatusUnauthorized
		message := "Invalid username or password"
		if !errors.Is(err, service.ErrInvalidCredentials) {
			c.Error(err)
			status = http.StatusInternalServerError
			message = "Login failed"
		}
		a.renderHTML(c, status, "login.html", gin.H{
			"title":    "Admin Login",
			"error":    message,
			"username": username,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		c.Error(err)
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Failed to save session",
		})
		return
	}

	a.logger.Info("admin login")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 清除会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.Error(err)
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard 渲染只读的内容概览
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)

	projects, err := a.projects.List()
	if err != nil {
		c.Error(err)
	}
	categories, err := a.techStack.List()
	if err != nil {
		c.Error(err)
	}
	links, err := a.links.List(nil)
	if err != nil {
		c.Error(err)
	}
	activeLinks, inactiveLinks := content.PartitionLinks(links)
	info := a.personal.Get()

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":             "Dashboard",
		"username":          session.Get(sessionUsernameKey),
		"info":              info,
		"navigationLines":   view.NavLines(info.Navigation),
		"footerLinkLines":   view.NavLines(info.Footer.Links),
		"projects":          projects,
		"statuses":          content.ProjectStatuses,
		"projectCategories": content.ProjectCategories,
		"techKeys":          content.TechCategoryKeys,
		"categories":        categories,
		"activeLinks":       activeLinks,
		"inactiveLinks":     inactiveLinks,
		"linkCategories":    content.LinkCategoryOptions(links),
		"minPassword":       service.MinPasswordLength,
		"dataDir":           a.store.Dir(),
	})
}

// AuthRequired 保护后台页面，未登录时跳转到登录页
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserIDKey) == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// APIAuthRequired 保护写接口：接受会话或 Authorization: Bearer 令牌
func (a *API) APIAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if userID := session.Get(sessionUserIDKey); userID != nil {
			c.Set(contextUserIDKey, userID)
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		user, err := a.auth.Authenticate(token)
		if err != nil {
			if !errors.Is(err, service.ErrTokenInvalid) {
				c.Error(err)
			}
			respondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, user.ID)
		c.Next()
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// APILogin 校验账号并返回 Bearer 令牌
func (a *API) APILogin(c *gin.Context) {
	var payload loginRequest
	if !bindJSON(c, &payload, "Invalid login payload") {
		return
	}

	token, user, err := a.auth.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
	})
}

// APILogout 吊销当前请求携带的令牌并清除会话
func (a *API) APILogout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		if err := a.auth.Revoke(token); err != nil {
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "Logout failed")
			return
		}
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.Error(err)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword 修改当前登录账号的密码
func (a *API) ChangePassword(c *gin.Context) {
	var payload changePasswordRequest
	if !bindJSON(c, &payload, "Invalid password payload") {
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	err := a.auth.ChangePassword(userID, payload.CurrentPassword, payload.NewPassword)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, service.ErrPasswordTooShort):
		respondError(c, http.StatusBadRequest, "New password must be at least 6 characters")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusBadRequest, "Current password is incorrect")
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to change password")
	}
}

func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(contextUserIDKey)
	if !exists {
		return 0, false
	}
	switch id := value.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), id > 0
	case int64:
		return uint(id), id > 0
	case float64:
		return uint(id), id > 0
	default:
		return 0, false
	}
}
