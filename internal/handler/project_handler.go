package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/content"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

// ListProjects 返回全部项目数组
func (a *API) ListProjects(c *gin.Context) {
	projects, err := a.projects.List()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject 根据 ID 返回单个项目
func (a *API) GetProject(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := a.projects.Get(id)
	if err != nil {
		handleProjectError(c, err, "Failed to fetch project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject 分配 ID 并追加项目
func (a *API) CreateProject(c *gin.Context) {
	var payload content.Project
	if !bindJSON(c, &payload, "Invalid project payload") {
		return
	}

	project, err := a.projects.Create(payload)
	if err != nil {
		handleProjectError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject 整体替换指定项目
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var payload content.Project
	if !bindJSON(c, &payload, "Invalid project payload") {
		return
	}

	project, err := a.projects.Update(id, payload)
	if err != nil {
		handleProjectError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject 删除指定项目
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		handleProjectError(c, err, "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func handleProjectError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		respondError(c, http.StatusNotFound, "Project not found")
	case errors.Is(err, content.ErrInvalid):
		respondError(c, http.StatusBadRequest, content.Message(err))
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
