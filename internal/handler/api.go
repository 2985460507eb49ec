package handler

import (
	"path/filepath"
	"time"

	"github.com/folio/internal/content"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	store     *content.Store
	personal  *service.PersonalInfoService
	projects  *service.ProjectService
	techStack *service.TechStackService
	links     *service.LinkService
	contact   *service.ContactService
	auth      *service.AuthService
	logger    *zap.Logger
	uploadDir string
	uploadURL string
	perPage   int
}

// Options 是构造 API 时除存储外的可调参数
type Options struct {
	UploadDir           string
	UploadURL           string
	ContactDelay        time.Duration
	TokenTTL            time.Duration
	HomeProjectsPerPage int
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, store *content.Store, logger *zap.Logger, opts Options) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.UploadURL == "" {
		opts.UploadURL = "/uploads"
	}
	if opts.UploadDir == "" {
		opts.UploadDir = filepath.Join(store.Dir(), "uploads")
	}
	if opts.HomeProjectsPerPage <= 0 {
		opts.HomeProjectsPerPage = 6
	}

	return &API{
		db:        gdb,
		store:     store,
		personal:  service.NewPersonalInfoService(store, logger),
		projects:  service.NewProjectService(store, logger),
		techStack: service.NewTechStackService(store, logger),
		links:     service.NewLinkService(store, logger),
		contact:   service.NewContactService(opts.ContactDelay, logger),
		auth:      service.NewAuthService(gdb, opts.TokenTTL),
		logger:    logger,
		uploadDir: opts.UploadDir,
		uploadURL: opts.UploadURL,
		perPage:   opts.HomeProjectsPerPage,
	}
}

// renderHTML 在向模板渲染时自动附加个人资料，供页头导航与页脚使用。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["info"]; !exists {
		payload["info"] = a.personal.Get()
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}
