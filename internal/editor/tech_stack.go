package editor

import (
	"context"
	"strings"

	"github.com/folio/internal/content"
)

// TechStackSaver 整体提交技术栈
type TechStackSaver interface {
	PutTechStack(ctx context.Context, categories []content.TechCategory) ([]content.TechCategory, error)
}

// TechStackEditor 是技术栈管理的工作副本
type TechStackEditor struct {
	*Draft[[]content.TechCategory]
}

// NewTechStackEditor creates an editor over the loaded categories.
func NewTechStackEditor(categories []content.TechCategory) *TechStackEditor {
	return &TechStackEditor{Draft: NewDraft(categories, content.CloneTechStack)}
}

// AddCategory 追加一个空分类，空白名称会被忽略
func (e *TechStackEditor) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	w := e.Working()
	*w = append(*w, content.TechCategory{Category: name, Technologies: []content.Technology{}})
	return true
}

// RenameCategory sets the label of the category at index.
func (e *TechStackEditor) RenameCategory(index int, name string) error {
	w := *e.Working()
	if index < 0 || index >= len(w) {
		return ErrIndexOutOfRange
	}
	w[index].Category = strings.TrimSpace(name)
	return nil
}

// RemoveCategory removes the category at index together with its technologies.
func (e *TechStackEditor) RemoveCategory(index int) error {
	w := e.Working()
	next, err := removeAt(*w, index)
	if err != nil {
		return err
	}
	*w = next
	return nil
}

// AddTechnology 向分类追加技术，图标为空时使用默认图标，同名技术不会重复添加
func (e *TechStackEditor) AddTechnology(categoryIndex int, name, icon string) (bool, error) {
	w := *e.Working()
	if categoryIndex < 0 || categoryIndex >= len(w) {
		return false, ErrIndexOutOfRange
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	for _, tech := range w[categoryIndex].Technologies {
		if tech.Name == name {
			return false, nil
		}
	}

	icon = strings.TrimSpace(icon)
	if icon == "" {
		icon = content.DefaultTechIcon
	}
	w[categoryIndex].Technologies = append(w[categoryIndex].Technologies, content.Technology{Name: name, Icon: icon})
	return true, nil
}

// UpdateTechnology replaces one technology in place.
func (e *TechStackEditor) UpdateTechnology(categoryIndex, techIndex int, tech content.Technology) error {
	w := *e.Working()
	if categoryIndex < 0 || categoryIndex >= len(w) {
		return ErrIndexOutOfRange
	}
	if tech.Icon == "" {
		tech.Icon = content.DefaultTechIcon
	}
	return updateAt(w[categoryIndex].Technologies, techIndex, tech)
}

// RemoveTechnology removes one technology from a category.
func (e *TechStackEditor) RemoveTechnology(categoryIndex, techIndex int) error {
	w := *e.Working()
	if categoryIndex < 0 || categoryIndex >= len(w) {
		return ErrIndexOutOfRange
	}
	next, err := removeAt(w[categoryIndex].Technologies, techIndex)
	if err != nil {
		return err
	}
	w[categoryIndex].Technologies = next
	return nil
}

// Save 校验并整体提交技术栈
func (e *TechStackEditor) Save(ctx context.Context, saver TechStackSaver) error {
	doc := content.CloneTechStack(*e.Working())
	if err := content.ValidateTechStack(doc); err != nil {
		return err
	}
	saved, err := saver.PutTechStack(ctx, doc)
	if err != nil {
		return err
	}
	e.Commit(saved)
	return nil
}
