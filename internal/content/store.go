package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store 把每种内容类型保存为数据目录下的一个 JSON 文件。
// 每次读取都重新加载整个文件，每次写入都整体覆盖；不加锁，后写者覆盖先写者。
type Store struct {
	dir string
}

type projectsDocument struct {
	Projects []Project `json:"projects"`
}

type techStackDocument struct {
	Categories []TechCategory `json:"categories"`
}

type linksDocument struct {
	Links []LinkItem `json:"links"`
}

// NewStore 创建 Store，目录不存在时自动创建
func NewStore(dir string) (*Store, error) {
	path := strings.TrimSpace(dir)
	if path == "" {
		path = "data"
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("content dir %s is not a directory", path)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("create content dir: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat content dir: %w", err)
	}

	return &Store{dir: path}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file backing kind.
func (s *Store) Path(kind Kind) string {
	return filepath.Join(s.dir, kind.FileName())
}

// PersonalInfo 读取个人资料。文件缺失时返回默认值；文件损坏时同样返回默认值，并附带错误供调用方记录。
func (s *Store) PersonalInfo() (PersonalInfo, error) {
	info := DefaultPersonalInfo()
	found, err := s.read(KindPersonalInfo, &info)
	if err != nil {
		return DefaultPersonalInfo(), err
	}
	if !found {
		return DefaultPersonalInfo(), nil
	}
	info.normalize()
	return info, nil
}

// SavePersonalInfo 整体覆盖个人资料
func (s *Store) SavePersonalInfo(info PersonalInfo) error {
	info.normalize()
	return s.write(KindPersonalInfo, info)
}

// Projects 读取项目列表，文件缺失时返回空列表
func (s *Store) Projects() ([]Project, error) {
	var doc projectsDocument
	if _, err := s.read(KindProjects, &doc); err != nil {
		return nil, err
	}
	if doc.Projects == nil {
		return []Project{}, nil
	}
	for i := range doc.Projects {
		doc.Projects[i].normalize()
	}
	return doc.Projects, nil
}

// SaveProjects 整体覆盖项目列表
func (s *Store) SaveProjects(projects []Project) error {
	if projects == nil {
		projects = []Project{}
	}
	for i := range projects {
		projects[i].normalize()
	}
	return s.write(KindProjects, projectsDocument{Projects: projects})
}

// TechStack 读取技术栈分类
func (s *Store) TechStack() ([]TechCategory, error) {
	var doc techStackDocument
	if _, err := s.read(KindTechStack, &doc); err != nil {
		return nil, err
	}
	return normalizeTechStack(doc.Categories), nil
}

// SaveTechStack 整体覆盖技术栈
func (s *Store) SaveTechStack(categories []TechCategory) error {
	return s.write(KindTechStack, techStackDocument{Categories: normalizeTechStack(categories)})
}

// Links 读取链接列表
func (s *Store) Links() ([]LinkItem, error) {
	var doc linksDocument
	if _, err := s.read(KindLinks, &doc); err != nil {
		return nil, err
	}
	if doc.Links == nil {
		return []LinkItem{}, nil
	}
	return doc.Links, nil
}

// SaveLinks 整体覆盖链接列表
func (s *Store) SaveLinks(links []LinkItem) error {
	if links == nil {
		links = []LinkItem{}
	}
	return s.write(KindLinks, linksDocument{Links: links})
}

func (s *Store) read(kind Kind, dst any) (bool, error) {
	raw, err := os.ReadFile(s.Path(kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", kind, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", kind, err)
	}
	return true, nil
}

// write 先写入同目录临时文件再 rename，保证文件级别的全有或全无
func (s *Store) write(kind Kind, doc any) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	raw = append(raw, '\n')

	tmp, err := os.CreateTemp(s.dir, "."+string(kind)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	if err := os.Rename(tmpName, s.Path(kind)); err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	return nil
}
