package book

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
)

// QueryBooksUseCase 图书查询用例(详情+列表)
type QueryBooksUseCase struct {
	bookService book.Service
	genreRepo   genre.Repository
}

// NewQueryBooksUseCase 创建图书查询用例
func NewQueryBooksUseCase(bookService book.Service, genreRepo genre.Repository) *QueryBooksUseCase {
	return &QueryBooksUseCase{
		bookService: bookService,
		genreRepo:   genreRepo,
	}
}

// Get 查询图书详情(附带分类名称)
func (uc *QueryBooksUseCase) Get(ctx context.Context, id uint) (*BookDTO, error) {
	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	genreName := ""
	if g, err := uc.genreRepo.FindByID(ctx, b.GenreID); err == nil {
		genreName = g.Name
	}

	dto := toBookDTO(b, genreName)
	return &dto, nil
}

// List 分页查询图书列表
// 分类名称通过一次批量查询补全,避免N+1
func (uc *QueryBooksUseCase) List(ctx context.Context, params book.ListParams) (*BookListResult, error) {
	books, total, err := uc.bookService.ListBooks(ctx, params)
	if err != nil {
		return nil, err
	}

	genreNames, err := uc.genreNames(ctx, books)
	if err != nil {
		return nil, err
	}

	items := make([]BookDTO, 0, len(books))
	for _, b := range books {
		items = append(items, toBookDTO(b, genreNames[b.GenreID]))
	}
	return &BookListResult{Items: items, Total: total}, nil
}

// genreNames 批量查询图书涉及的分类名称
func (uc *QueryBooksUseCase) genreNames(ctx context.Context, books []*book.Book) (map[uint]string, error) {
	seen := make(map[uint]bool)
	ids := make([]uint, 0, len(books))
	for _, b := range books {
		if !seen[b.GenreID] {
			seen[b.GenreID] = true
			ids = append(ids, b.GenreID)
		}
	}

	genres, err := uc.genreRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(genres))
	for _, g := range genres {
		names[g.ID] = g.Name
	}
	return names, nil
}
