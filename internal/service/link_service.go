package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/folio/internal/content"
	"go.uber.org/zap"
)

// ErrLinkNotFound 在指定 ID 的链接不存在时返回
var ErrLinkNotFound = errors.New("link not found")

// LinkService 管理 links.json 中的链接数组
type LinkService struct {
	store  *content.Store
	logger *zap.Logger
	now    func() time.Time
}

// LinkInput 描述创建或更新链接时的字段，IsActive 使用指针判断是否显式传入
type LinkInput struct {
	Title       string
	URL         string
	Description string
	Category    string
	IsActive    *bool
	CreatedAt   string
}

// NewLinkService creates a LinkService.
func NewLinkService(store *content.Store, logger *zap.Logger) *LinkService {
	return &LinkService{store: store, logger: orNop(logger), now: time.Now}
}

// List 返回链接；active 不为 nil 时只返回对应分区
func (s *LinkService) List(active *bool) ([]content.LinkItem, error) {
	links, err := s.store.Links()
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	if active == nil {
		return links, nil
	}

	activeLinks, inactiveLinks := content.PartitionLinks(links)
	if *active {
		return activeLinks, nil
	}
	return inactiveLinks, nil
}

// Create 追加一条链接，未指定 isActive 时默认启用
func (s *LinkService) Create(input LinkInput) (content.LinkItem, error) {
	link := input.toLink()
	link.IsActive = true
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if err := content.ValidateLink(link); err != nil {
		return content.LinkItem{}, err
	}

	links, err := s.List(nil)
	if err != nil {
		return content.LinkItem{}, err
	}

	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
	}
	now := s.now()
	id, err := nextID(ids, now)
	if err != nil {
		return content.LinkItem{}, fmt.Errorf("create link: %w", err)
	}
	link.ID = id
	link.CreatedAt = now.UTC().Format(time.RFC3339)

	links = append(links, link)
	if err := s.store.SaveLinks(links); err != nil {
		s.logger.Error("save links failed", zap.Error(err))
		return content.LinkItem{}, fmt.Errorf("create link: %w", err)
	}
	return link, nil
}

// Update 整体替换指定链接；createdAt 与 isActive 未传入时沿用原值
func (s *LinkService) Update(id int64, input LinkInput) (content.LinkItem, error) {
	return s.modify(id, func(existing content.LinkItem) (content.LinkItem, error) {
		link := input.toLink()
		link.ID = id
		link.IsActive = existing.IsActive
		if input.IsActive != nil {
			link.IsActive = *input.IsActive
		}
		if link.CreatedAt == "" {
			link.CreatedAt = existing.CreatedAt
		}
		if err := content.ValidateLink(link); err != nil {
			return content.LinkItem{}, err
		}
		return link, nil
	})
}

// Toggle 翻转 isActive，其余字段保持不变
func (s *LinkService) Toggle(id int64) (content.LinkItem, error) {
	return s.modify(id, func(existing content.LinkItem) (content.LinkItem, error) {
		existing.IsActive = !existing.IsActive
		return existing, nil
	})
}

// Delete 移除指定链接
func (s *LinkService) Delete(id int64) error {
	links, err := s.List(nil)
	if err != nil {
		return err
	}

	kept := make([]content.LinkItem, 0, len(links))
	for _, l := range links {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(links) {
		return ErrLinkNotFound
	}

	if err := s.store.SaveLinks(kept); err != nil {
		s.logger.Error("save links failed", zap.Error(err))
		return fmt.Errorf("delete link: %w", err)
	}
	return nil
}

func (s *LinkService) modify(id int64, apply func(content.LinkItem) (content.LinkItem, error)) (content.LinkItem, error) {
	links, err := s.List(nil)
	if err != nil {
		return content.LinkItem{}, err
	}

	for i := range links {
		if links[i].ID != id {
			continue
		}
		updated, err := apply(links[i])
		if err != nil {
			return content.LinkItem{}, err
		}
		links[i] = updated
		if err := s.store.SaveLinks(links); err != nil {
			s.logger.Error("save links failed", zap.Error(err))
			return content.LinkItem{}, fmt.Errorf("update link: %w", err)
		}
		return updated, nil
	}
	return content.LinkItem{}, ErrLinkNotFound
}

func (in LinkInput) toLink() content.LinkItem {
	return content.LinkItem{
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		Category:    in.Category,
		CreatedAt:   in.CreatedAt,
	}
}
