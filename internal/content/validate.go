package content

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrInvalid 是所有字段校验失败的根错误，后台编辑器与 API 共用同一套规则
var ErrInvalid = errors.New("invalid content")

// MaxRecordID 是项目与链接 ID 的上限，即 JSON 数字能精确表示的最大整数
const MaxRecordID int64 = 1<<53 - 1

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidatePersonalInfo 要求 name/title/email 非空且邮箱格式合法
func ValidatePersonalInfo(info PersonalInfo) error {
	if strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Title) == "" || strings.TrimSpace(info.Email) == "" {
		return fmt.Errorf("%w: Name, title, and email are required", ErrInvalid)
	}
	if !emailPattern.MatchString(info.Email) {
		return fmt.Errorf("%w: Invalid email format", ErrInvalid)
	}
	return nil
}

// ValidateProject 要求 title/description 非空，状态为空或属于固定枚举
func ValidateProject(project Project) error {
	if strings.TrimSpace(project.Title) == "" || strings.TrimSpace(project.Description) == "" {
		return fmt.Errorf("%w: Title and description are required", ErrInvalid)
	}
	if project.Status != "" && !slices.Contains(ProjectStatuses, project.Status) {
		return fmt.Errorf("%w: Status must be one of %s", ErrInvalid, strings.Join(ProjectStatuses, ", "))
	}
	return nil
}

// ValidateLink 要求 title/url/category 非空
func ValidateLink(link LinkItem) error {
	if strings.TrimSpace(link.Title) == "" || strings.TrimSpace(link.URL) == "" || strings.TrimSpace(link.Category) == "" {
		return fmt.Errorf("%w: Title, URL, and category are required", ErrInvalid)
	}
	return nil
}

// ValidateTechStack 要求每个分类名称非空
func ValidateTechStack(categories []TechCategory) error {
	for i, category := range categories {
		if strings.TrimSpace(category.Category) == "" {
			return fmt.Errorf("%w: category %d has an empty name", ErrInvalid, i+1)
		}
	}
	return nil
}

// Message strips the ErrInvalid prefix so handlers can show the human readable part.
func Message(err error) string {
	msg := err.Error()
	prefix := ErrInvalid.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}
