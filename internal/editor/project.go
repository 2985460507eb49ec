package editor

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/folio/internal/content"
)

// ErrUnknownTechCategory 在技术分类不在固定列表中时返回
var ErrUnknownTechCategory = errors.New("unknown technology category")

// ProjectSaver 创建或更新单个项目
type ProjectSaver interface {
	CreateProject(ctx context.Context, project content.Project) (content.Project, error)
	UpdateProject(ctx context.Context, id int64, project content.Project) (content.Project, error)
}

// ListField 标识项目中允许重复的有序文本列表
type ListField int

const (
	Features ListField = iota
	Challenges
	Learnings
)

// ProjectEditor 是项目表单的工作副本；ID 为 0 时保存会创建新项目
type ProjectEditor struct {
	*Draft[content.Project]
}

// NewProjectEditor creates an editor for an existing project.
func NewProjectEditor(project content.Project) *ProjectEditor {
	return &ProjectEditor{Draft: NewDraft(project, content.Project.Clone)}
}

// NewBlankProjectEditor 使用"新建项目"表单的初始值
func NewBlankProjectEditor() *ProjectEditor {
	return NewProjectEditor(content.NewProject())
}

// AddTag 追加标签，空白或已存在的标签会被忽略
func (e *ProjectEditor) AddTag(tag string) bool {
	w := e.Working()
	next, added := appendUnique(w.Tags, tag)
	w.Tags = next
	return added
}

// RemoveTag 删除与 tag 相同的标签
func (e *ProjectEditor) RemoveTag(tag string) {
	w := e.Working()
	w.Tags = slices.DeleteFunc(slices.Clone(w.Tags), func(t string) bool { return t == tag })
}

// AddItem 在 field 对应的列表末尾追加一项，空白内容会被忽略
func (e *ProjectEditor) AddItem(field ListField, value string) bool {
	value = strings.TrimSpace(value)
	list := e.list(field)
	if list == nil || value == "" {
		return false
	}
	*list = append(*list, value)
	return true
}

// UpdateItem replaces the entry at index in field.
func (e *ProjectEditor) UpdateItem(field ListField, index int, value string) error {
	list := e.list(field)
	if list == nil {
		return ErrIndexOutOfRange
	}
	return updateAt(*list, index, value)
}

// RemoveItem removes the entry at index in field.
func (e *ProjectEditor) RemoveItem(field ListField, index int) error {
	list := e.list(field)
	if list == nil {
		return ErrIndexOutOfRange
	}
	next, err := removeAt(*list, index)
	if err != nil {
		return err
	}
	*list = next
	return nil
}

// AddTechnology 向固定分类追加技术，重复项会被忽略
func (e *ProjectEditor) AddTechnology(category, name string) (bool, error) {
	slot := e.Working().Technologies.Slot(category)
	if slot == nil {
		return false, ErrUnknownTechCategory
	}
	next, added := appendUnique(*slot, name)
	*slot = next
	return added, nil
}

// RemoveTechnology removes the technology at index in category.
func (e *ProjectEditor) RemoveTechnology(category string, index int) error {
	slot := e.Working().Technologies.Slot(category)
	if slot == nil {
		return ErrUnknownTechCategory
	}
	next, err := removeAt(*slot, index)
	if err != nil {
		return err
	}
	*slot = next
	return nil
}

// AddImage 追加一个空的图库位置，由 UpdateImage 填写
func (e *ProjectEditor) AddImage() {
	w := e.Working()
	w.Images = append(w.Images, "")
}

// UpdateImage sets the gallery image at index.
func (e *ProjectEditor) UpdateImage(index int, url string) error {
	return updateAt(e.Working().Images, index, url)
}

// RemoveImage removes the gallery image at index.
func (e *ProjectEditor) RemoveImage(index int) error {
	w := e.Working()
	next, err := removeAt(w.Images, index)
	if err != nil {
		return err
	}
	w.Images = next
	return nil
}

// Save 校验后创建或更新项目，提交前去掉空白图库项
func (e *ProjectEditor) Save(ctx context.Context, saver ProjectSaver) error {
	doc := e.Working().Clone()
	doc.Images = slices.DeleteFunc(doc.Images, func(img string) bool { return strings.TrimSpace(img) == "" })
	if err := content.ValidateProject(doc); err != nil {
		return err
	}

	var (
		saved content.Project
		err   error
	)
	if doc.ID == 0 {
		saved, err = saver.CreateProject(ctx, doc)
	} else {
		saved, err = saver.UpdateProject(ctx, doc.ID, doc)
	}
	if err != nil {
		return err
	}
	e.Commit(saved)
	return nil
}

func (e *ProjectEditor) list(field ListField) *[]string {
	w := e.Working()
	switch field {
	case Features:
		return &w.Features
	case Challenges:
		return &w.Challenges
	case Learnings:
		return &w.Learnings
	}
	return nil
}

func appendUnique(list []string, value string) ([]string, bool) {
	value = strings.TrimSpace(value)
	if value == "" || slices.Contains(list, value) {
		return list, false
	}
	return append(list, value), true
}
