package view

import (
	"strconv"
	"strings"

	"github.com/folio/internal/content"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CardTagLimit 是项目卡片上最多直接展示的标签数
const CardTagLimit = 3

// ProjectCard 是列表页与首页使用的项目卡片
type ProjectCard struct {
	ID          int64
	Href        string
	Title       string
	Description string
	Image       string
	Link        string
	Tags        []string
	MoreTags    int
}

// TechGroup 是详情页中一个非空的技术分类
type TechGroup struct {
	Key   string
	Label string
	Items []string
}

var titleCaser = cases.Title(language.English)

// ProjectCards 构造卡片，只保留前三个标签，其余以 "+N more" 形式提示
func ProjectCards(projects []content.Project) []ProjectCard {
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		card := ProjectCard{
			ID:          p.ID,
			Href:        ProjectHref(p.ID),
			Title:       p.Title,
			Description: p.Description,
			Image:       p.Image,
			Link:        p.Link,
		}
		if len(p.Tags) > CardTagLimit {
			card.Tags = p.Tags[:CardTagLimit]
			card.MoreTags = len(p.Tags) - CardTagLimit
		} else {
			card.Tags = p.Tags
		}
		cards = append(cards, card)
	}
	return cards
}

// ProjectHref returns the detail page path for a project id.
func ProjectHref(id int64) string {
	return "/projects/" + strconv.FormatInt(id, 10)
}

// TechGroups 按固定分类顺序列出项目使用的技术，跳过空分类
func TechGroups(t content.Technologies) []TechGroup {
	groups := make([]TechGroup, 0, len(content.TechCategoryKeys))
	for _, key := range content.TechCategoryKeys {
		items := t.Get(key)
		if len(items) == 0 {
			continue
		}
		groups = append(groups, TechGroup{Key: key, Label: TechLabel(key), Items: items})
	}
	return groups
}

// TechLabel 把分类键转换为展示标题，ai 特殊处理为 AI
func TechLabel(key string) string {
	if strings.EqualFold(key, content.TechAI) {
		return "AI"
	}
	return titleCaser.String(key)
}

// GalleryImages 返回非空的图库图片；只有一张时不展示图库
func GalleryImages(p content.Project) []string {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if strings.TrimSpace(img) != "" {
			images = append(images, img)
		}
	}
	if len(images) <= 1 {
		return nil
	}
	return images
}

// NavLines 把导航项格式化为后台文本框使用的 "名称 | 链接" 行
func NavLines(items []content.NavItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.Name+" | "+item.Href)
	}
	return strings.Join(lines, "\n")
}
