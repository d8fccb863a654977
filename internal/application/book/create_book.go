package book

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// CreateBookRequest 创建图书请求
// GenreID与GenreName二选一:
// - 指定GenreID时分类必须已存在
// - 指定GenreName时按名称解析分类(不区分大小写),不存在则自动创建
type CreateBookRequest struct {
	ISBN            string
	Title           string
	Author          string
	Publisher       string
	PublicationYear int
	Price           int64 // 分
	Stock           int
	Description     string
	GenreID         uint
	GenreName       string
}

// CreateBookUseCase 创建图书用例
// 编排分类解析与图书创建
type CreateBookUseCase struct {
	bookService  book.Service
	genreService genre.Service
}

// NewCreateBookUseCase 创建图书创建用例
func NewCreateBookUseCase(bookService book.Service, genreService genre.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService:  bookService,
		genreService: genreService,
	}
}

// Execute 执行图书创建
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookDTO, error) {
	g, err := uc.resolveGenre(ctx, req)
	if err != nil {
		return nil, err
	}

	b, err := uc.bookService.CreateBook(ctx, book.CreateParams{
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		Stock:           req.Stock,
		Description:     req.Description,
		GenreID:         g.ID,
	})
	if err != nil {
		return nil, err
	}

	dto := toBookDTO(b, g.Name)
	return &dto, nil
}

// resolveGenre 解析图书所属分类
func (uc *CreateBookUseCase) resolveGenre(ctx context.Context, req CreateBookRequest) (*genre.Genre, error) {
	if req.GenreID != 0 {
		return uc.genreService.GetGenre(ctx, req.GenreID)
	}
	if req.GenreName != "" {
		return uc.genreService.ResolveByName(ctx, req.GenreName)
	}
	return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "必须指定分类ID或分类名称")
}
