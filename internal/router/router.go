package router

import (
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/folio/internal/handler"
	"github.com/folio/internal/logging"
	"github.com/folio/internal/view"
	"github.com/folio/web"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options 是路由层需要的配置
type Options struct {
	SessionSecret        string
	UploadDir            string
	UploadURLPath        string
	ContactRatePerMinute int
	LoginRatePerMinute   int
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, logger *zap.Logger, opts Options) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SessionSecret == "" {
		opts.SessionSecret = "folio-dev-secret"
	}
	if opts.UploadURLPath == "" {
		opts.UploadURLPath = "/uploads"
	}

	r := gin.New()
	r.Use(logging.GinLogger(logger), gin.Recovery())

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 7 * 24 * 3600, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("folio_session", store))

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(web.Templates, "template/*/*.html")
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))
	if opts.UploadDir != "" {
		r.Static(opts.UploadURLPath, opts.UploadDir)
	}

	r.GET("/healthz", api.HealthCheck)

	// 公开页面
	r.GET("/", api.ShowHome)
	r.GET("/projects", api.ShowProjects)
	r.GET("/projects/:id", api.ShowProjectDetail)
	r.NoRoute(api.NotFound)

	// 后台页面
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", handler.RateLimit(opts.LoginRatePerMinute), api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
		}
	}

	// 内容 API
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/personal-info", api.GetPersonalInfo)
		apiGroup.GET("/projects", api.ListProjects)
		apiGroup.GET("/projects/:id", api.GetProject)
		apiGroup.GET("/tech-stack", api.GetTechStack)
		apiGroup.GET("/links", api.ListLinks)
		apiGroup.GET("/links/categories", api.ListLinkCategories)

		apiGroup.POST("/contact", handler.RateLimit(opts.ContactRatePerMinute), api.SubmitContact)
		apiGroup.POST("/auth/login", handler.RateLimit(opts.LoginRatePerMinute), api.APILogin)
		apiGroup.POST("/auth/logout", api.APILogout)

		write := apiGroup.Group("")
		write.Use(api.APIAuthRequired())
		{
			write.PUT("/personal-info", api.UpdatePersonalInfo)

			write.POST("/projects", api.CreateProject)
			write.PUT("/projects/:id", api.UpdateProject)
			write.DELETE("/projects/:id", api.DeleteProject)

			write.PUT("/tech-stack", api.UpdateTechStack)

			write.POST("/links", api.CreateLink)
			write.PUT("/links/:id", api.UpdateLink)
			write.PATCH("/links/:id/toggle", api.ToggleLink)
			write.DELETE("/links/:id", api.DeleteLink)

			write.POST("/upload", api.UploadImage)
			write.POST("/auth/change-password", api.ChangePassword)
		}
	}

	return r, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"gt": func(a, b int) bool {
			return a > b
		},
		"join": strings.Join,
		"socialIcon": func(key string) template.HTML {
			return template.HTML(view.SocialIconSVG(key))
		},
		"initial": func(name string) string {
			name = strings.TrimSpace(name)
			if name == "" {
				return "?"
			}
			return strings.ToUpper(string([]rune(name)[:1]))
		},
	}
}
