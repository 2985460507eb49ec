package db

import (
	"time"

	"gorm.io/gorm"
)

// AdminToken 是登录后发放给后台客户端的 Bearer 令牌
// ExpiresAt 之后令牌失效，登出时直接删除记录
type AdminToken struct {
	gorm.Model
	Token     string    `gorm:"size:64;uniqueIndex;not null"`
	UserID    uint      `gorm:"index;not null"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"index"`
}

// TableName 返回自定义表名
func (AdminToken) TableName() string {
	return "admin_tokens"
}
