package service

import (
	"errors"
	"time"

	"github.com/folio/internal/content"
)

// ErrIDSpaceExhausted 在已有 ID 已达到 content.MaxRecordID 时返回
var ErrIDSpaceExhausted = errors.New("record id space exhausted")

// nextID 以当前毫秒时间戳作为新记录 ID；不大于已有最大 ID 时取 max+1，保证文档内唯一
func nextID(existing []int64, now time.Time) (int64, error) {
	candidate := now.UnixMilli()
	var maxID int64
	for _, id := range existing {
		maxID = max(maxID, id)
	}
	if maxID >= content.MaxRecordID {
		return 0, ErrIDSpaceExhausted
	}
	if candidate <= maxID {
		return maxID + 1, nil
	}
	return candidate, nil
}
