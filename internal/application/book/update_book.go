package book

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
)

// UpdateBookRequest 更新图书请求(零值字段不更新)
type UpdateBookRequest struct {
	Title           string
	Author          string
	Publisher       string
	PublicationYear int
	Price           int64
	Stock           *int
	Description     string
	GenreID         uint
}

// UpdateBookUseCase 图书更新与删除用例
type UpdateBookUseCase struct {
	bookService  book.Service
	genreService genre.Service
}

// NewUpdateBookUseCase 创建图书更新用例
func NewUpdateBookUseCase(bookService book.Service, genreService genre.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService:  bookService,
		genreService: genreService,
	}
}

// Execute 执行图书更新
// 变更分类时先校验目标分类存在
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req UpdateBookRequest) (*BookDTO, error) {
	if req.GenreID != 0 {
		if _, err := uc.genreService.GetGenre(ctx, req.GenreID); err != nil {
			return nil, err
		}
	}

	b, err := uc.bookService.UpdateBook(ctx, id, book.UpdateParams{
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		Stock:           req.Stock,
		Description:     req.Description,
		GenreID:         req.GenreID,
	})
	if err != nil {
		return nil, err
	}

	genreName := ""
	if g, err := uc.genreService.GetGenre(ctx, b.GenreID); err == nil {
		genreName = g.Name
	}

	dto := toBookDTO(b, genreName)
	return &dto, nil
}

// Delete 删除图书
func (uc *UpdateBookUseCase) Delete(ctx context.Context, id uint) error {
	return uc.bookService.DeleteBook(ctx, id)
}
