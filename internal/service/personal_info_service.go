package service

import (
	"fmt"

	"github.com/folio/internal/content"
	"go.uber.org/zap"
)

// PersonalInfoService 读写站点主人的个人资料文档
type PersonalInfoService struct {
	store  *content.Store
	logger *zap.Logger
}

// NewPersonalInfoService 构造 PersonalInfoService
func NewPersonalInfoService(store *content.Store, logger *zap.Logger) *PersonalInfoService {
	return &PersonalInfoService{store: store, logger: orNop(logger)}
}

// Get 返回个人资料。读取失败不会向调用方报错，而是记录日志并返回空结构。
func (s *PersonalInfoService) Get() content.PersonalInfo {
	info, err := s.store.PersonalInfo()
	if err != nil {
		s.logger.Warn("personal info unreadable, serving default", zap.Error(err))
	}
	return info
}

// Update 校验后整体覆盖个人资料，返回写入的文档
func (s *PersonalInfoService) Update(info content.PersonalInfo) (content.PersonalInfo, error) {
	if err := content.ValidatePersonalInfo(info); err != nil {
		return content.PersonalInfo{}, err
	}

	if err := s.store.SavePersonalInfo(info); err != nil {
		s.logger.Error("save personal info failed", zap.Error(err))
		return content.PersonalInfo{}, fmt.Errorf("update personal info: %w", err)
	}

	// 重新读取以返回归一化后的内容（例如 nil 列表会被写成空数组）
	saved, err := s.store.PersonalInfo()
	if err != nil {
		return content.PersonalInfo{}, fmt.Errorf("reload personal info: %w", err)
	}
	return saved, nil
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
