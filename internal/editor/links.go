package editor

import (
	"context"

	"github.com/folio/internal/content"
)

// LinkSaver 创建、更新或切换单条链接
type LinkSaver interface {
	CreateLink(ctx context.Context, link content.LinkItem) (content.LinkItem, error)
	UpdateLink(ctx context.Context, id int64, link content.LinkItem) (content.LinkItem, error)
}

// LinkToggler flips the active flag of a stored link.
type LinkToggler interface {
	ToggleLink(ctx context.Context, id int64) (content.LinkItem, error)
}

// LinkEditor 是单条链接表单的工作副本；ID 为 0 时保存会创建新链接
type LinkEditor struct {
	*Draft[content.LinkItem]
}

func cloneLink(link content.LinkItem) content.LinkItem { return link }

// NewLinkEditor creates an editor for an existing link.
func NewLinkEditor(link content.LinkItem) *LinkEditor {
	return &LinkEditor{Draft: NewDraft(link, cloneLink)}
}

// NewBlankLinkEditor 新建链接默认启用
func NewBlankLinkEditor() *LinkEditor {
	return NewLinkEditor(content.LinkItem{IsActive: true})
}

// Save 校验后创建或更新链接
func (e *LinkEditor) Save(ctx context.Context, saver LinkSaver) error {
	doc := *e.Working()
	if err := content.ValidateLink(doc); err != nil {
		return err
	}

	var (
		saved content.LinkItem
		err   error
	)
	if doc.ID == 0 {
		saved, err = saver.CreateLink(ctx, doc)
	} else {
		saved, err = saver.UpdateLink(ctx, doc.ID, doc)
	}
	if err != nil {
		return err
	}
	e.Commit(saved)
	return nil
}

// LinkBoard 是后台链接列表，按启用状态分两栏展示
type LinkBoard struct {
	Active     []content.LinkItem
	Inactive   []content.LinkItem
	Categories []string
}

// NewLinkBoard partitions links and collects category suggestions.
func NewLinkBoard(links []content.LinkItem) LinkBoard {
	active, inactive := content.PartitionLinks(links)
	return LinkBoard{
		Active:     active,
		Inactive:   inactive,
		Categories: content.LinkCategoryOptions(links),
	}
}

// Toggle 切换链接状态并返回刷新后的列表
func Toggle(ctx context.Context, toggler LinkToggler, links []content.LinkItem, id int64) ([]content.LinkItem, error) {
	updated, err := toggler.ToggleLink(ctx, id)
	if err != nil {
		return links, err
	}

	next := make([]content.LinkItem, len(links))
	copy(next, links)
	for i := range next {
		if next[i].ID == id {
			next[i] = updated
		}
	}
	return next, nil
}
