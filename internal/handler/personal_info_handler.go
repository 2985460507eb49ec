package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/content"
	"github.com/gin-gonic/gin"
)

// GetPersonalInfo 返回个人资料；文件缺失或损坏时返回空结构而不是错误
func (a *API) GetPersonalInfo(c *gin.Context) {
	c.JSON(http.StatusOK, a.personal.Get())
}

// UpdatePersonalInfo 校验并整体覆盖个人资料
func (a *API) UpdatePersonalInfo(c *gin.Context) {
	var payload content.PersonalInfo
	if !bindJSON(c, &payload, "Invalid personal info payload") {
		return
	}

	saved, err := a.personal.Update(payload)
	if err != nil {
		if errors.Is(err, content.ErrInvalid) {
			respondError(c, http.StatusBadRequest, content.Message(err))
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to update personal info")
		return
	}

	c.JSON(http.StatusOK, saved)
}
