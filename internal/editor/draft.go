// Package editor holds the admin working copies of each content document and
// the HTTP client that submits them to the content API.
package editor

import (
	"errors"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ErrIndexOutOfRange 在按下标更新或删除列表元素越界时返回
var ErrIndexOutOfRange = errors.New("index out of range")

// Draft 保存一份已提交的文档和一份可修改的工作副本
type Draft[T any] struct {
	committed T
	working   T
	clone     func(T) T
}

// NewDraft 以 doc 作为已提交版本创建草稿，clone 用于深拷贝
func NewDraft[T any](doc T, clone func(T) T) *Draft[T] {
	return &Draft[T]{committed: clone(doc), working: clone(doc), clone: clone}
}

// Working 返回工作副本，调用方可直接修改
func (d *Draft[T]) Working() *T {
	return &d.working
}

// Committed 返回最近一次成功保存的版本
func (d *Draft[T]) Committed() T {
	return d.clone(d.committed)
}

// Dirty 报告工作副本是否偏离已提交版本，nil 与空列表视为相同
func (d *Draft[T]) Dirty() bool {
	return !cmp.Equal(d.committed, d.working, cmpopts.EquateEmpty())
}

// Commit 把服务端返回的文档同时设为已提交版本和新的工作副本
func (d *Draft[T]) Commit(saved T) {
	d.committed = d.clone(saved)
	d.working = d.clone(saved)
}

// Discard 丢弃未保存的修改
func (d *Draft[T]) Discard() {
	d.working = d.clone(d.committed)
}

func updateAt[E any](list []E, index int, value E) error {
	if index < 0 || index >= len(list) {
		return ErrIndexOutOfRange
	}
	list[index] = value
	return nil
}

func removeAt[E any](list []E, index int) ([]E, error) {
	if index < 0 || index >= len(list) {
		return list, ErrIndexOutOfRange
	}
	out := make([]E, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...), nil
}
