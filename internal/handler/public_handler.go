package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/content"
	"github.com/folio/internal/service"
	"github.com/folio/internal/view"
	"github.com/gin-gonic/gin"
)

// ShowHome 渲染首页：个人资料、第一页项目、技术栈与联系表单
func (a *API) ShowHome(c *gin.Context) {
	info := a.personal.Get()
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)

	data := gin.H{
		"title":       info.Name,
		"info":        info,
		"socialLinks": view.SocialLinks(info),
	}

	result, err := a.projects.Paginate(page, a.perPage)
	if err != nil {
		c.Error(err)
		data["error"] = "Failed to load projects"
		data["totalPages"] = 0
	} else {
		data["projects"] = view.ProjectCards(result.Projects)
		data["page"] = result.Page
		data["totalPages"] = result.TotalPages
		data["hasPrev"] = result.Page > 1
		data["hasNext"] = result.Page < result.TotalPages
	}

	categories, err := a.techStack.List()
	if err != nil {
		c.Error(err)
	}
	data["techStack"] = categories

	links, err := a.links.List(nil)
	if err != nil {
		c.Error(err)
	}
	activeLinks, _ := content.PartitionLinks(links)
	data["links"] = activeLinks

	a.renderHTML(c, http.StatusOK, "home.html", data)
}

// ShowProjects 渲染全部项目卡片
func (a *API) ShowProjects(c *gin.Context) {
	info := a.personal.Get()
	projects, err := a.projects.List()
	if err != nil {
		c.Error(err)
		a.renderHTML(c, http.StatusInternalServerError, "projects.html", gin.H{
			"title": "Projects",
			"info":  info,
			"error": "Failed to load projects",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "projects.html", gin.H{
		"title":    "Projects",
		"info":     info,
		"projects": view.ProjectCards(projects),
	})
}

// ShowProjectDetail 渲染项目详情，ID 非法或不存在时返回 404 页面
func (a *API) ShowProjectDetail(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		a.NotFound(c)
		return
	}

	project, err := a.projects.Get(id)
	if err != nil {
		if !errors.Is(err, service.ErrProjectNotFound) {
			c.Error(err)
		}
		a.NotFound(c)
		return
	}

	overview, err := renderMarkdown(project.Overview)
	if err != nil {
		c.Error(err)
	}

	a.renderHTML(c, http.StatusOK, "project_detail.html", gin.H{
		"title":    project.Title,
		"project":  project,
		"gallery":  view.GalleryImages(*project),
		"groups":   view.TechGroups(project.Technologies),
		"overview": overview,
	})
}

// NotFound 渲染统一的 404 页面
func (a *API) NotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "not_found.html", gin.H{
		"title": "Not Found",
	})
}
