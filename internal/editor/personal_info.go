package editor

import (
	"context"

	"github.com/folio/internal/content"
)

// PersonalInfoSaver 提交完整的个人资料
type PersonalInfoSaver interface {
	PutPersonalInfo(ctx context.Context, info content.PersonalInfo) (content.PersonalInfo, error)
}

// PersonalInfoEditor 是个人资料表单的工作副本
type PersonalInfoEditor struct {
	*Draft[content.PersonalInfo]
}

// NewPersonalInfoEditor creates an editor over the loaded document.
func NewPersonalInfoEditor(info content.PersonalInfo) *PersonalInfoEditor {
	return &PersonalInfoEditor{Draft: NewDraft(info, content.PersonalInfo.Clone)}
}

// AddNavItem 在导航末尾追加一项
func (e *PersonalInfoEditor) AddNavItem(name, href string) {
	w := e.Working()
	w.Navigation = append(w.Navigation, content.NavItem{Name: name, Href: href})
}

// UpdateNavItem replaces the navigation item at index.
func (e *PersonalInfoEditor) UpdateNavItem(index int, item content.NavItem) error {
	return updateAt(e.Working().Navigation, index, item)
}

// RemoveNavItem removes the navigation item at index.
func (e *PersonalInfoEditor) RemoveNavItem(index int) error {
	w := e.Working()
	next, err := removeAt(w.Navigation, index)
	if err != nil {
		return err
	}
	w.Navigation = next
	return nil
}

// AddFooterLink 在页脚链接末尾追加一项
func (e *PersonalInfoEditor) AddFooterLink(name, href string) {
	w := e.Working()
	w.Footer.Links = append(w.Footer.Links, content.NavItem{Name: name, Href: href})
}

// UpdateFooterLink replaces the footer link at index.
func (e *PersonalInfoEditor) UpdateFooterLink(index int, item content.NavItem) error {
	return updateAt(e.Working().Footer.Links, index, item)
}

// RemoveFooterLink removes the footer link at index.
func (e *PersonalInfoEditor) RemoveFooterLink(index int) error {
	w := e.Working()
	next, err := removeAt(w.Footer.Links, index)
	if err != nil {
		return err
	}
	w.Footer.Links = next
	return nil
}

// Save 校验并提交工作副本，失败时工作副本保持不变
func (e *PersonalInfoEditor) Save(ctx context.Context, saver PersonalInfoSaver) error {
	doc := e.Working().Clone()
	if err := content.ValidatePersonalInfo(doc); err != nil {
		return err
	}
	saved, err := saver.PutPersonalInfo(ctx, doc)
	if err != nil {
		return err
	}
	e.Commit(saved)
	return nil
}
