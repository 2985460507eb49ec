package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// SubmitContact 模拟发送联系表单，等待后返回固定回执
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactRequest
	if err := c.ShouldBind(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact payload")
		return
	}

	ack, err := a.contact.Submit(c.Request.Context(), service.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": ack})
	case errors.Is(err, service.ErrContactInvalidInput):
		respondError(c, http.StatusBadRequest, "Name, email, and message are required")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// 客户端已断开，响应不会被读取
		c.Status(http.StatusRequestTimeout)
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to send message")
	}
}
