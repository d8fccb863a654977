package genre

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// Service 分类领域服务接口
type Service interface {
	// CreateGenre 创建分类
	// 业务规则：名称非空、不超过50字符、不可重复（区分大小写）
	CreateGenre(ctx context.Context, name string) (*Genre, error)

	// GetGenre 根据ID获取分类
	GetGenre(ctx context.Context, id uint) (*Genre, error)

	// ListGenres 分页查询分类列表
	ListGenres(ctx context.Context, page, pageSize int) ([]*Genre, int64, error)

	// RenameGenre 重命名分类
	RenameGenre(ctx context.Context, id uint, name string) (*Genre, error)

	// DeleteGenre 删除分类
	// 业务规则：分类下仍有图书时拒绝删除
	DeleteGenre(ctx context.Context, id uint) error

	// ResolveByName 按名称解析分类（不区分大小写），不存在则创建
	// 用于图书创建时未指定分类ID的场景
	ResolveByName(ctx context.Context, name string) (*Genre, error)
}

type service struct {
	repo  Repository
	books BookCounter
}

// NewService 创建分类领域服务
func NewService(repo Repository, books BookCounter) Service {
	return &service{repo: repo, books: books}
}

// CreateGenre 创建分类
func (s *service) CreateGenre(ctx context.Context, name string) (*Genre, error) {
	name = strings.TrimSpace(name)
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	// 先查重给出友好错误，数据库唯一索引兜底并发场景
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, ErrNameDuplicate
	}
	if err != nil && !errors.Is(err, ErrGenreNotFound) {
		return nil, err
	}

	g := NewGenre(name)
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// GetGenre 根据ID获取分类
func (s *service) GetGenre(ctx context.Context, id uint) (*Genre, error) {
	return s.repo.FindByID(ctx, id)
}

// ListGenres 分页查询分类列表
func (s *service) ListGenres(ctx context.Context, page, pageSize int) ([]*Genre, int64, error) {
	return s.repo.List(ctx, page, pageSize)
}

// RenameGenre 重命名分类
func (s *service) RenameGenre(ctx context.Context, id uint, name string) (*Genre, error) {
	name = strings.TrimSpace(name)
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 改名为其他分类已占用的名称时拒绝
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing != nil && existing.ID != id {
		return nil, ErrNameDuplicate
	}
	if err != nil && !errors.Is(err, ErrGenreNotFound) {
		return nil, err
	}

	g.Rename(name)
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// DeleteGenre 删除分类
// 引用检查通过计数查询完成，不依赖数据库外键约束
func (s *service) DeleteGenre(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.books.CountByGenreID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrGenreInUse
	}

	return s.repo.Delete(ctx, id)
}

// ResolveByName 按名称解析分类（不区分大小写），不存在则创建
func (s *service) ResolveByName(ctx context.Context, name string) (*Genre, error) {
	name = strings.TrimSpace(name)
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	g, err := s.repo.FindByNameFold(ctx, name)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, ErrGenreNotFound) {
		return nil, err
	}

	g = NewGenre(name)
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// isValidName 分类名校验：非空且不超过50个字符
func isValidName(name string) bool {
	return name != "" && utf8.RuneCountInString(name) <= 50
}
