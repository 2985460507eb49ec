package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/content"
	"github.com/gin-gonic/gin"
)

// GetTechStack 返回技术栈分类数组
func (a *API) GetTechStack(c *gin.Context) {
	categories, err := a.techStack.List()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch tech stack")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// UpdateTechStack 整体覆盖技术栈
func (a *API) UpdateTechStack(c *gin.Context) {
	var payload []content.TechCategory
	if !bindJSON(c, &payload, "Invalid tech stack payload") {
		return
	}

	categories, err := a.techStack.Replace(payload)
	if err != nil {
		if errors.Is(err, content.ErrInvalid) {
			respondError(c, http.StatusBadRequest, content.Message(err))
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to save tech stack")
		return
	}
	c.JSON(http.StatusOK, categories)
}
