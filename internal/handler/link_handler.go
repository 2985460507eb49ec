package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/content"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

type linkRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
}

// ListLinks 返回链接数组，?active=true|false 只返回对应分区
func (a *API) ListLinks(c *gin.Context) {
	links, err := a.links.List(parseBoolQuery(c, "active"))
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch links")
		return
	}
	c.JSON(http.StatusOK, links)
}

// ListLinkCategories 返回已使用的分类与固定建议分类
func (a *API) ListLinkCategories(c *gin.Context) {
	links, err := a.links.List(nil)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch links")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": content.LinkCategoryOptions(links)})
}

// CreateLink 追加一条链接
func (a *API) CreateLink(c *gin.Context) {
	var payload linkRequest
	if !bindJSON(c, &payload, "Invalid link payload") {
		return
	}

	link, err := a.links.Create(payload.toInput())
	if err != nil {
		handleLinkError(c, err, "Failed to create link")
		return
	}
	c.JSON(http.StatusCreated, link)
}

// UpdateLink 整体替换指定链接
func (a *API) UpdateLink(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid link ID")
		return
	}

	var payload linkRequest
	if !bindJSON(c, &payload, "Invalid link payload") {
		return
	}

	link, err := a.links.Update(id, payload.toInput())
	if err != nil {
		handleLinkError(c, err, "Failed to update link")
		return
	}
	c.JSON(http.StatusOK, link)
}

// ToggleLink 翻转链接的启用状态
func (a *API) ToggleLink(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid link ID")
		return
	}

	link, err := a.links.Toggle(id)
	if err != nil {
		handleLinkError(c, err, "Failed to update link")
		return
	}
	c.JSON(http.StatusOK, link)
}

// DeleteLink 删除指定链接
func (a *API) DeleteLink(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid link ID")
		return
	}

	if err := a.links.Delete(id); err != nil {
		handleLinkError(c, err, "Failed to delete link")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (r linkRequest) toInput() service.LinkInput {
	return service.LinkInput{
		Title:       r.Title,
		URL:         r.URL,
		Description: r.Description,
		Category:    r.Category,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}
}

func handleLinkError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrLinkNotFound):
		respondError(c, http.StatusNotFound, "Link not found")
	case errors.Is(err, content.ErrInvalid):
		respondError(c, http.StatusBadRequest, content.Message(err))
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
