package genre

import (
	"context"
)

// Repository 分类仓储接口（依赖倒置原则）
type Repository interface {
	// Create 创建分类
	Create(ctx context.Context, genre *Genre) error

	// FindByID 根据ID查找分类
	FindByID(ctx context.Context, id uint) (*Genre, error)

	// FindByName 根据名称精确查找分类（区分大小写）
	FindByName(ctx context.Context, name string) (*Genre, error)

	// FindByNameFold 根据名称查找分类（不区分大小写）
	// 用于图书创建时按名称解析分类
	FindByNameFold(ctx context.Context, name string) (*Genre, error)

	// FindByIDs 批量查找分类
	FindByIDs(ctx context.Context, ids []uint) ([]*Genre, error)

	// Update 更新分类
	Update(ctx context.Context, genre *Genre) error

	// Delete 删除分类
	Delete(ctx context.Context, id uint) error

	// List 分页查询分类列表
	List(ctx context.Context, page, pageSize int) ([]*Genre, int64, error)
}

// BookCounter 图书计数端口
// 删除分类前需要统计引用该分类的图书数量，
// 由图书仓储实现（见internal/infrastructure/persistence/mysql）。
type BookCounter interface {
	CountByGenreID(ctx context.Context, genreID uint) (int64, error)
}
