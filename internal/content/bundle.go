package content

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Bundle 汇总全部四种内容文档，用于 YAML 导入导出与初始化种子数据
type Bundle struct {
	PersonalInfo PersonalInfo   `yaml:"personalInfo"`
	Projects     []Project      `yaml:"projects"`
	TechStack    []TechCategory `yaml:"techStack"`
	Links        []LinkItem     `yaml:"links"`
}

// Export 读取当前存储中的全部文档
func (s *Store) Export() (Bundle, error) {
	var bundle Bundle
	var err error

	if bundle.PersonalInfo, err = s.PersonalInfo(); err != nil {
		return Bundle{}, err
	}
	if bundle.Projects, err = s.Projects(); err != nil {
		return Bundle{}, err
	}
	if bundle.TechStack, err = s.TechStack(); err != nil {
		return Bundle{}, err
	}
	if bundle.Links, err = s.Links(); err != nil {
		return Bundle{}, err
	}
	return bundle, nil
}

// ValidateBundle 对包内每条记录执行与 API 相同的校验，
// 并要求项目与链接的 ID 落在 1..MaxRecordID 内且各自唯一。
func ValidateBundle(bundle Bundle) error {
	if err := ValidatePersonalInfo(bundle.PersonalInfo); err != nil {
		return fmt.Errorf("personal info: %w", err)
	}

	projectIDs := make([]int64, 0, len(bundle.Projects))
	for i, project := range bundle.Projects {
		if err := ValidateProject(project); err != nil {
			return fmt.Errorf("project %d: %w", i+1, err)
		}
		projectIDs = append(projectIDs, project.ID)
	}
	if err := validateIDs("project", projectIDs); err != nil {
		return err
	}

	if err := ValidateTechStack(bundle.TechStack); err != nil {
		return fmt.Errorf("tech stack: %w", err)
	}

	linkIDs := make([]int64, 0, len(bundle.Links))
	for i, link := range bundle.Links {
		if err := ValidateLink(link); err != nil {
			return fmt.Errorf("link %d: %w", i+1, err)
		}
		linkIDs = append(linkIDs, link.ID)
	}
	return validateIDs("link", linkIDs)
}

func validateIDs(kind string, ids []int64) error {
	seen := make(map[int64]struct{}, len(ids))
	for i, id := range ids {
		if id <= 0 || id > MaxRecordID {
			return fmt.Errorf("%w: %s %d has id %d outside 1..%d", ErrInvalid, kind, i+1, id, MaxRecordID)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate %s id %d", ErrInvalid, kind, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Import 校验整个包后再逐个覆盖四个文档，校验失败时不写任何文件
func (s *Store) Import(bundle Bundle) error {
	if err := ValidateBundle(bundle); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := s.SavePersonalInfo(bundle.PersonalInfo); err != nil {
		return err
	}
	if err := s.SaveProjects(bundle.Projects); err != nil {
		return err
	}
	if err := s.SaveTechStack(bundle.TechStack); err != nil {
		return err
	}
	return s.SaveLinks(bundle.Links)
}

// DecodeBundle parses a YAML bundle.
func DecodeBundle(r io.Reader) (Bundle, error) {
	var bundle Bundle
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&bundle); err != nil {
		return Bundle{}, fmt.Errorf("decode bundle: %w", err)
	}
	return bundle, nil
}

// EncodeBundle writes bundle as YAML.
func EncodeBundle(w io.Writer, bundle Bundle) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(bundle); err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	return enc.Close()
}
