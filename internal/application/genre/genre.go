// Package genre 分类管理用例
// 分类的业务规则都在领域服务中,应用层只做DTO转换与编排。
package genre

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
)

// GenreDTO 分类DTO
type GenreDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GenreListResult 分类列表结果
type GenreListResult struct {
	Items []GenreDTO `json:"items"`
	Total int64      `json:"total"`
}

// UseCase 分类管理用例集合
// 分类操作简单,合并为单个用例结构(对比交易用例按操作拆分)
type UseCase struct {
	genreService genre.Service
}

// NewUseCase 创建分类用例
func NewUseCase(genreService genre.Service) *UseCase {
	return &UseCase{genreService: genreService}
}

// Create 创建分类
func (uc *UseCase) Create(ctx context.Context, name string) (*GenreDTO, error) {
	g, err := uc.genreService.CreateGenre(ctx, name)
	if err != nil {
		return nil, err
	}
	dto := toGenreDTO(g)
	return &dto, nil
}

// Get 根据ID获取分类
func (uc *UseCase) Get(ctx context.Context, id uint) (*GenreDTO, error) {
	g, err := uc.genreService.GetGenre(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toGenreDTO(g)
	return &dto, nil
}

// List 分页查询分类列表
func (uc *UseCase) List(ctx context.Context, page, pageSize int) (*GenreListResult, error) {
	genres, total, err := uc.genreService.ListGenres(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]GenreDTO, 0, len(genres))
	for _, g := range genres {
		items = append(items, toGenreDTO(g))
	}
	return &GenreListResult{Items: items, Total: total}, nil
}

// Rename 重命名分类
func (uc *UseCase) Rename(ctx context.Context, id uint, name string) (*GenreDTO, error) {
	g, err := uc.genreService.RenameGenre(ctx, id, name)
	if err != nil {
		return nil, err
	}
	dto := toGenreDTO(g)
	return &dto, nil
}

// Delete 删除分类
// 分类下仍有图书时返回ErrGenreInUse
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.genreService.DeleteGenre(ctx, id)
}

func toGenreDTO(g *genre.Genre) GenreDTO {
	return GenreDTO{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
