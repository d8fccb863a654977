package transaction

import (
	"context"
)

// Repository 交易仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建交易(含明细,必须在事务中调用)
	Create(ctx context.Context, tx *Transaction) error

	// FindByID 根据ID查找交易(含明细)
	FindByID(ctx context.Context, id uint) (*Transaction, error)

	// List 分页查询交易列表(按创建时间倒序,含明细)
	List(ctx context.Context, page, pageSize int) ([]*Transaction, int64, error)

	// Statistics 聚合统计:交易总数与平均交易金额
	Statistics(ctx context.Context) (*Statistics, error)

	// SalesByGenre 按分类统计销量
	// 结果按销量降序排列,销量相同时按分类ID升序
	SalesByGenre(ctx context.Context) ([]GenreSales, error)
}

// Statistics 交易汇总统计
type Statistics struct {
	TotalTransactions int64   // 交易总数
	AverageAmount     float64 // 平均交易金额(分),无交易时为0
}

// GenreSales 分类销量统计
type GenreSales struct {
	GenreID  uint   // 分类ID
	Name     string // 分类名称
	Quantity int64  // 售出册数
}
