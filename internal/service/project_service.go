package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/folio/internal/content"
	"go.uber.org/zap"
)

// ErrProjectNotFound 在指定 ID 的项目不存在时返回
var ErrProjectNotFound = errors.New("project not found")

// ProjectService 管理 projects.json 中的项目数组
type ProjectService struct {
	store  *content.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewProjectService creates a ProjectService.
func NewProjectService(store *content.Store, logger *zap.Logger) *ProjectService {
	return &ProjectService{store: store, logger: orNop(logger), now: time.Now}
}

// ProjectPage 是首页分页后的项目
type ProjectPage struct {
	Projects   []content.Project
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// List returns every project in stored order.
func (s *ProjectService) List() ([]content.Project, error) {
	projects, err := s.store.Projects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Paginate 返回第 page 页的项目，page 越界时返回最后一页
func (s *ProjectService) Paginate(page, perPage int) (ProjectPage, error) {
	projects, err := s.List()
	if err != nil {
		return ProjectPage{}, err
	}

	perPage = normalizePerPage(perPage, 6)
	result := ProjectPage{
		Page:       normalizePage(page),
		PerPage:    perPage,
		Total:      len(projects),
		TotalPages: calculateTotalPages(int64(len(projects)), perPage),
	}
	if result.TotalPages > 0 && result.Page > result.TotalPages {
		result.Page = result.TotalPages
	}

	start := (result.Page - 1) * perPage
	end := min(start+perPage, len(projects))
	if start >= len(projects) {
		result.Projects = []content.Project{}
		return result, nil
	}
	result.Projects = projects[start:end]
	return result, nil
}

// Get 根据 ID 获取项目
func (s *ProjectService) Get(id int64) (*content.Project, error) {
	projects, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, ErrProjectNotFound
}

// Create 分配新 ID 并把项目追加到列表末尾。客户端传入的 ID 会被忽略。
func (s *ProjectService) Create(project content.Project) (content.Project, error) {
	if err := content.ValidateProject(project); err != nil {
		return content.Project{}, err
	}

	projects, err := s.List()
	if err != nil {
		return content.Project{}, err
	}

	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	id, err := nextID(ids, s.now())
	if err != nil {
		return content.Project{}, fmt.Errorf("create project: %w", err)
	}
	project.ID = id
	if project.Status == "" {
		project.Status = content.StatusInProgress
	}

	projects = append(projects, project)
	if err := s.store.SaveProjects(projects); err != nil {
		s.logger.Error("save projects failed", zap.Error(err))
		return content.Project{}, fmt.Errorf("create project: %w", err)
	}

	return projects[len(projects)-1], nil
}

// Update 用请求体整体替换指定项目，路径中的 ID 优先于请求体中的 ID
func (s *ProjectService) Update(id int64, project content.Project) (content.Project, error) {
	if err := content.ValidateProject(project); err != nil {
		return content.Project{}, err
	}

	projects, err := s.List()
	if err != nil {
		return content.Project{}, err
	}

	index := -1
	for i := range projects {
		if projects[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return content.Project{}, ErrProjectNotFound
	}

	project.ID = id
	if project.Status == "" {
		project.Status = content.StatusInProgress
	}
	projects[index] = project

	if err := s.store.SaveProjects(projects); err != nil {
		s.logger.Error("save projects failed", zap.Error(err))
		return content.Project{}, fmt.Errorf("update project: %w", err)
	}
	return projects[index], nil
}

// Delete 移除指定项目，其余项目保持不变
func (s *ProjectService) Delete(id int64) error {
	projects, err := s.List()
	if err != nil {
		return err
	}

	kept := make([]content.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return ErrProjectNotFound
	}

	if err := s.store.SaveProjects(kept); err != nil {
		s.logger.Error("save projects failed", zap.Error(err))
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePerPage(perPage, fallback int) int {
	if perPage <= 0 {
		return fallback
	}
	return perPage
}

func calculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total == 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
