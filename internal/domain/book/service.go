package book

import (
	"context"
	"errors"
	"regexp"
)

// CreateParams 创建图书参数
type CreateParams struct {
	ISBN            string
	Title           string
	Author          string
	Publisher       string
	PublicationYear int
	Price           int64 // 分
	Stock           int
	Description     string
	GenreID         uint
}

// UpdateParams 更新图书参数(零值字段不更新)
type UpdateParams struct {
	Title           string
	Author          string
	Publisher       string
	PublicationYear int
	Price           int64
	Stock           *int // 区分"不更新"与"更新为0"
	Description     string
	GenreID         uint
}

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验与唯一性检查
// 2. 不依赖具体的Repository实现(依赖倒置)
// 3. 分类的按名称解析属于应用层编排,不在此处
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - ISBN格式必须合法(10位或13位数字)
	// - 价格必须在1-9999999分之间
	// - 库存必须>=0
	// - 书名与ISBN不能重复
	CreateBook(ctx context.Context, params CreateParams) (*Book, error)

	// GetBook 根据ID获取图书详情
	GetBook(ctx context.Context, id uint) (*Book, error)

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// UpdateBook 更新图书
	UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, params CreateParams) (*Book, error) {
	if !isValidISBN(params.ISBN) {
		return nil, ErrInvalidISBN
	}

	if params.Price < 1 || params.Price > 9999999 {
		return nil, ErrInvalidPrice
	}

	if params.Stock < 0 {
		return nil, ErrInvalidStock
	}

	if params.PublicationYear != 0 && (params.PublicationYear < 1000 || params.PublicationYear > 2100) {
		return nil, ErrInvalidYear
	}

	// 先查重给出明确错误,数据库唯一索引兜底并发场景
	if err := s.checkTitleUnique(ctx, params.Title, 0); err != nil {
		return nil, err
	}
	if err := s.checkISBNUnique(ctx, params.ISBN, 0); err != nil {
		return nil, err
	}

	b := NewBook(params.ISBN, params.Title, params.Author, params.Publisher,
		params.PublicationYear, params.Price, params.Stock, params.Description, params.GenreID)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != "" && params.Title != b.Title {
		if err := s.checkTitleUnique(ctx, params.Title, id); err != nil {
			return nil, err
		}
	}

	b.UpdateInfo(params.Title, params.Author, params.Publisher, params.Description, params.PublicationYear)

	if params.Price != 0 {
		if err := b.UpdatePrice(params.Price); err != nil {
			return nil, err
		}
	}

	if params.Stock != nil {
		if err := b.UpdateStock(*params.Stock); err != nil {
			return nil, err
		}
	}

	if params.GenreID != 0 {
		b.GenreID = params.GenreID
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

func (s *service) checkTitleUnique(ctx context.Context, title string, selfID uint) error {
	existing, err := s.repo.FindByTitle(ctx, title)
	if err == nil && existing != nil && existing.ID != selfID {
		return ErrTitleDuplicate
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return err
	}
	return nil
}

func (s *service) checkISBNUnique(ctx context.Context, isbn string, selfID uint) error {
	existing, err := s.repo.FindByISBN(ctx, isbn)
	if err == nil && existing != nil && existing.ID != selfID {
		return ErrISBNDuplicate
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return err
	}
	return nil
}

var nonDigitRe = regexp.MustCompile(`[^0-9Xx]`)

// isValidISBN 校验ISBN格式
// 支持ISBN-10(末位可为X)与ISBN-13,允许分隔符
// 简化实现:只检查位数(生产环境应校验校验位)
func isValidISBN(isbn string) bool {
	clean := nonDigitRe.ReplaceAllString(isbn, "")
	length := len(clean)
	return length == 10 || length == 13
}
