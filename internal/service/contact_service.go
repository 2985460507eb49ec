package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ContactAcknowledgement 是联系表单的固定回执
const ContactAcknowledgement = "Thanks for your message! Contact form is for demo purposes only."

// ErrContactInvalidInput 在姓名、邮箱或留言缺失时返回
var ErrContactInvalidInput = errors.New("invalid contact message")

// ContactMessage 是联系表单提交的内容
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// ContactService 模拟提交联系表单：等待固定时长后返回回执，不保存、不发信
type ContactService struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewContactService creates a ContactService with the simulated submission delay.
func NewContactService(delay time.Duration, logger *zap.Logger) *ContactService {
	return &ContactService{delay: delay, logger: orNop(logger)}
}

// Submit 校验后等待 delay，请求被取消时提前返回 ctx.Err()
func (s *ContactService) Submit(ctx context.Context, msg ContactMessage) (string, error) {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
		return "", fmt.Errorf("%w: name, email, and message are required", ErrContactInvalidInput)
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	s.logger.Info("contact form submission",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.Int("message_runes", len([]rune(msg.Message))),
	)
	return ContactAcknowledgement, nil
}
