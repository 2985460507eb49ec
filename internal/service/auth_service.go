package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/folio/internal/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenInvalid 令牌不存在或已过期
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrPasswordTooShort 新密码少于 MinPasswordLength 个字符
	ErrPasswordTooShort = errors.New("password too short")
)

// MinPasswordLength 是后台密码的最小长度
const MinPasswordLength = 6

// AuthService 负责后台账号校验与 Bearer 令牌的签发、校验、吊销
type AuthService struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewAuthService 构造 AuthService，ttl <= 0 时令牌有效期为 7 天
func NewAuthService(gdb *gorm.DB, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &AuthService{db: gdb, ttl: ttl, now: time.Now}
}

// Verify 校验用户名与密码
func (s *AuthService) Verify(username, password string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Login 校验账号并签发新令牌
func (s *AuthService) Login(username, password string) (string, *db.User, error) {
	user, err := s.Verify(username, password)
	if err != nil {
		return "", nil, err
	}
	token, err := s.IssueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken 为指定用户签发令牌
func (s *AuthService) IssueToken(userID uint) (string, error) {
	record := db.AdminToken{
		Token:     strings.ReplaceAll(uuid.NewString(), "-", ""),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return record.Token, nil
}

// Authenticate 根据令牌返回所属用户，过期令牌视为无效
func (s *AuthService) Authenticate(token string) (*db.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenInvalid
	}

	var record db.AdminToken
	if err := s.db.Preload("User").Where("token = ?", token).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("find token: %w", err)
	}
	if !record.ExpiresAt.After(s.now()) {
		return nil, ErrTokenInvalid
	}
	return &record.User, nil
}

// Revoke 删除令牌，令牌不存在时不报错
func (s *AuthService) Revoke(token string) error {
	if err := s.db.Unscoped().Where("token = ?", strings.TrimSpace(token)).Delete(&db.AdminToken{}).Error; err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// ChangePassword 校验当前密码后更新为新密码
func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	var user db.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("find user: %w", err)
	}
	if !user.CheckPassword(currentPassword) {
		return ErrInvalidCredentials
	}

	hashed, err := db.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.db.Model(&user).Update("password", hashed).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
