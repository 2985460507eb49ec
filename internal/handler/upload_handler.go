package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// maxUploadSize 是单张图片的大小上限
const maxUploadSize = 10 << 20

var uploadFormatExt = map[string]string{
	"png":  ".png",
	"jpeg": ".jpg",
	"gif":  ".gif",
	"webp": ".webp",
}

// UploadImage 接收 multipart 字段 file，校验为图片后保存并返回可访问的 URL
func (a *API) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if header.Size > maxUploadSize {
		respondError(c, http.StatusBadRequest, "File is too large")
		return
	}

	file, err := header.Open()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	_, format, err := image.DecodeConfig(file)
	file.Close()
	ext, supported := uploadFormatExt[format]
	if err != nil || !supported {
		respondError(c, http.StatusBadRequest, "Only PNG, JPEG, GIF, and WebP images are allowed")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to create upload directory")
		return
	}

	filename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.NewString(), ext)
	if err := c.SaveUploadedFile(header, filepath.Join(a.uploadDir, filename)); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to save file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     path.Join("/", strings.Trim(a.uploadURL, "/"), filename),
	})
}
