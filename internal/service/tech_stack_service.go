package service

import (
	"fmt"

	"github.com/folio/internal/content"
	"go.uber.org/zap"
)

// TechStackService 读写技术栈分类列表
type TechStackService struct {
	store  *content.Store
	logger *zap.Logger
}

// NewTechStackService creates a TechStackService.
func NewTechStackService(store *content.Store, logger *zap.Logger) *TechStackService {
	return &TechStackService{store: store, logger: orNop(logger)}
}

// List returns the stored categories.
func (s *TechStackService) List() ([]content.TechCategory, error) {
	categories, err := s.store.TechStack()
	if err != nil {
		return nil, fmt.Errorf("list tech stack: %w", err)
	}
	return categories, nil
}

// Replace 整体覆盖技术栈，返回写入后的列表
func (s *TechStackService) Replace(categories []content.TechCategory) ([]content.TechCategory, error) {
	if err := content.ValidateTechStack(categories); err != nil {
		return nil, err
	}
	if err := s.store.SaveTechStack(categories); err != nil {
		s.logger.Error("save tech stack failed", zap.Error(err))
		return nil, fmt.Errorf("replace tech stack: %w", err)
	}
	return s.List()
}
