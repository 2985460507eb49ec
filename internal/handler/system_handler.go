package handler

import (
	"net/http"
	"os"

	"github.com/folio/internal/content"
	"github.com/gin-gonic/gin"
)

// HealthCheck 检查数据库连接与内容目录是否可用
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "database handle unavailable",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "database unreachable",
		})
		return
	}

	if info, err := os.Stat(a.store.Dir()); err != nil || !info.IsDir() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "content directory unavailable",
		})
		return
	}

	documents := gin.H{}
	for _, kind := range content.Kinds {
		state := "present"
		if _, err := os.Stat(a.store.Path(kind)); err != nil {
			state = "missing"
		}
		documents[string(kind)] = state
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  "up",
		"content":   "up",
		"documents": documents,
	})
}
