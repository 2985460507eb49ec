package content

import "slices"

// Kind 标识一种内容文档
type Kind string

const (
	KindPersonalInfo Kind = "personal-info"
	KindProjects     Kind = "projects"
	KindTechStack    Kind = "tech-stack"
	KindLinks        Kind = "links"
)

// Kinds 按固定顺序列出全部内容类型
var Kinds = []Kind{KindPersonalInfo, KindProjects, KindTechStack, KindLinks}

// FileName 返回该类型在数据目录中的文件名
func (k Kind) FileName() string {
	return string(k) + ".json"
}

// NavItem 是导航或页脚中的一个链接
type NavItem struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

// SocialLinks 保存固定的三个社交主页地址
type SocialLinks struct {
	GitHub   string `json:"github" yaml:"github"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	Twitter  string `json:"twitter" yaml:"twitter"`
}

// Footer 页脚版权与链接
type Footer struct {
	Copyright string    `json:"copyright" yaml:"copyright"`
	Links     []NavItem `json:"links" yaml:"links"`
}

// PersonalInfo 是站点主人的单例资料
type PersonalInfo struct {
	Name         string      `json:"name" yaml:"name"`
	Title        string      `json:"title" yaml:"title"`
	Description  string      `json:"description" yaml:"description"`
	Email        string      `json:"email" yaml:"email"`
	ProfileImage string      `json:"profileImage" yaml:"profileImage"`
	SocialLinks  SocialLinks `json:"socialLinks" yaml:"socialLinks"`
	Navigation   []NavItem   `json:"navigation" yaml:"navigation"`
	Footer       Footer      `json:"footer" yaml:"footer"`
}

// DefaultPersonalInfo 是文件缺失或损坏时返回的空结构
func DefaultPersonalInfo() PersonalInfo {
	return PersonalInfo{
		Navigation: []NavItem{},
		Footer:     Footer{Links: []NavItem{}},
	}
}

// Clone returns a deep copy.
func (p PersonalInfo) Clone() PersonalInfo {
	out := p
	out.Navigation = slices.Clone(p.Navigation)
	out.Footer.Links = slices.Clone(p.Footer.Links)
	return out
}

func (p *PersonalInfo) normalize() {
	if p.Navigation == nil {
		p.Navigation = []NavItem{}
	}
	if p.Footer.Links == nil {
		p.Footer.Links = []NavItem{}
	}
}

// 项目状态
const (
	StatusPlanning   = "Planning"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
)

// ProjectStatuses 按后台下拉顺序列出合法状态
var ProjectStatuses = []string{StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold}

// ProjectCategories 是后台建议的项目分类，分类本身不做限制
var ProjectCategories = []string{"Full Stack", "Frontend", "Backend", "Mobile", "AI/ML", "DevOps", "Other"}

// 技术栈固定分类
const (
	TechFrontend       = "frontend"
	TechBackend        = "backend"
	TechPayment        = "payment"
	TechAuthentication = "authentication"
	TechAI             = "ai"
	TechDeployment     = "deployment"
)

// TechCategoryKeys 是 Technologies 中固定的分类键顺序
var TechCategoryKeys = []string{TechFrontend, TechBackend, TechPayment, TechAuthentication, TechAI, TechDeployment}

// Technologies 按固定分类保存项目使用的技术
type Technologies struct {
	Frontend       []string `json:"frontend" yaml:"frontend"`
	Backend        []string `json:"backend" yaml:"backend"`
	Payment        []string `json:"payment" yaml:"payment"`
	Authentication []string `json:"authentication" yaml:"authentication"`
	AI             []string `json:"ai" yaml:"ai"`
	Deployment     []string `json:"deployment" yaml:"deployment"`
}

// Slot returns a pointer to the list for a category key, or nil for unknown keys.
func (t *Technologies) Slot(category string) *[]string {
	switch category {
	case TechFrontend:
		return &t.Frontend
	case TechBackend:
		return &t.Backend
	case TechPayment:
		return &t.Payment
	case TechAuthentication:
		return &t.Authentication
	case TechAI:
		return &t.AI
	case TechDeployment:
		return &t.Deployment
	}
	return nil
}

// Get returns the list stored under category.
func (t Technologies) Get(category string) []string {
	if slot := t.Slot(category); slot != nil {
		return *slot
	}
	return nil
}

// Project 是作品集中的一个项目
type Project struct {
	ID               int64        `json:"id" yaml:"id"`
	Title            string       `json:"title" yaml:"title"`
	Description      string       `json:"description" yaml:"description"`
	ShortDescription string       `json:"shortDescription" yaml:"shortDescription"`
	Image            string       `json:"image" yaml:"image"`
	Images           []string     `json:"images" yaml:"images"`
	Link             string       `json:"link" yaml:"link"`
	LiveDemo         string       `json:"liveDemo,omitempty" yaml:"liveDemo,omitempty"`
	Tags             []string     `json:"tags" yaml:"tags"`
	Category         string       `json:"category" yaml:"category"`
	Duration         string       `json:"duration" yaml:"duration"`
	Status           string       `json:"status" yaml:"status"`
	Technologies     Technologies `json:"technologies" yaml:"technologies"`
	Features         []string     `json:"features" yaml:"features"`
	Challenges       []string     `json:"challenges" yaml:"challenges"`
	Learnings        []string     `json:"learnings" yaml:"learnings"`
	Overview         string       `json:"overview" yaml:"overview"`
}

// NewProject 返回后台"新建项目"表单使用的初始值
func NewProject() Project {
	p := Project{Status: StatusInProgress, Images: []string{""}}
	p.normalize()
	return p
}

// Clone returns a deep copy.
func (p Project) Clone() Project {
	out := p
	out.Images = slices.Clone(p.Images)
	out.Tags = slices.Clone(p.Tags)
	out.Features = slices.Clone(p.Features)
	out.Challenges = slices.Clone(p.Challenges)
	out.Learnings = slices.Clone(p.Learnings)
	for _, key := range TechCategoryKeys {
		slot := out.Technologies.Slot(key)
		*slot = slices.Clone(*slot)
	}
	return out
}

func (p *Project) normalize() {
	for _, list := range []*[]string{&p.Images, &p.Tags, &p.Features, &p.Challenges, &p.Learnings} {
		if *list == nil {
			*list = []string{}
		}
	}
	for _, key := range TechCategoryKeys {
		if slot := p.Technologies.Slot(key); *slot == nil {
			*slot = []string{}
		}
	}
}

// Technology 是技术栈分类下的一项
type Technology struct {
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// DefaultTechIcon 未填写图标时使用
const DefaultTechIcon = "⚡"

// TechCategory 技术栈分类
type TechCategory struct {
	Category     string       `json:"category" yaml:"category"`
	Technologies []Technology `json:"technologies" yaml:"technologies"`
}

// CloneTechStack returns a deep copy of a tech stack.
func CloneTechStack(categories []TechCategory) []TechCategory {
	out := make([]TechCategory, len(categories))
	for i, category := range categories {
		out[i] = TechCategory{
			Category:     category.Category,
			Technologies: slices.Clone(category.Technologies),
		}
	}
	return out
}

func normalizeTechStack(categories []TechCategory) []TechCategory {
	if categories == nil {
		return []TechCategory{}
	}
	for i := range categories {
		if categories[i].Technologies == nil {
			categories[i].Technologies = []Technology{}
		}
	}
	return categories
}

// LinkCategories 是后台建议的链接分类
var LinkCategories = []string{"Personal", "Social", "Content", "Work", "Other"}

// LinkItem 是后台维护的一条外部链接
type LinkItem struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string `json:"category" yaml:"category"`
	IsActive    bool   `json:"isActive" yaml:"isActive"`
	CreatedAt   string `json:"createdAt" yaml:"createdAt"`
}

// PartitionLinks 按 IsActive 拆分链接，保持原有顺序
func PartitionLinks(links []LinkItem) (active, inactive []LinkItem) {
	active = []LinkItem{}
	inactive = []LinkItem{}
	for _, link := range links {
		if link.IsActive {
			active = append(active, link)
		} else {
			inactive = append(inactive, link)
		}
	}
	return active, inactive
}

// LinkCategoryOptions merges categories already in use with the fixed suggestions,
// in first-seen order and without duplicates.
func LinkCategoryOptions(links []LinkItem) []string {
	seen := make(map[string]struct{})
	options := make([]string, 0, len(LinkCategories)+len(links))
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		options = append(options, name)
	}
	for _, link := range links {
		add(link.Category)
	}
	for _, name := range LinkCategories {
		add(name)
	}
	return options
}
