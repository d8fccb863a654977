package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByIDs 批量查找图书(一次查询,用于订单创建)
	// 只返回存在的记录,缺失的ID由调用方比对
	FindByIDs(ctx context.Context, ids []uint) ([]*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// FindByTitle 根据书名精确查找图书
	FindByTitle(ctx context.Context, title string) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// CountByGenreID 统计某分类下的图书数量(分类删除前的引用检查)
	CountByGenreID(ctx context.Context, genreID uint) (int64, error)

	// UpdateStock 更新库存(原子操作,必须在事务中调用)
	// delta为正数表示增加,负数表示减少
	// 执行UPDATE ... SET stock = stock + delta WHERE stock + delta >= 0,
	// 行锁保证并发订单串行化,库存不足返回ErrInsufficientStock
	UpdateStock(ctx context.Context, id uint, delta int) error
}

// ListParams 列表查询参数
// 枚举支持的过滤条件,替代动态where对象
type ListParams struct {
	Page      int    // 页码(从1开始)
	PageSize  int    // 每页数量
	Keyword   string // 搜索关键词(搜索标题、作者、出版社)
	Author    string // 按作者过滤
	Publisher string // 按出版社过滤
	PriceMin  int64  // 价格下限(分),0表示不限制
	PriceMax  int64  // 价格上限(分),0表示不限制
	SortBy    string // 排序字段(price_asc, price_desc, created_at_desc)
}
