package transaction

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/transaction"
)

// GenrePopularity 分类销量排名项
type GenrePopularity struct {
	GenreID  uint   `json:"genre_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"` // 售出册数
}

// StatisticsResult 销售统计结果
// 无任何交易时:TotalTransactions=0、AverageTransaction=0、
// 最受欢迎/最不受欢迎分类为null
type StatisticsResult struct {
	TotalTransactions  int64            `json:"total_transactions"`
	AverageTransaction float64          `json:"average_transaction"` // 平均交易金额(分)
	MostPopularGenre   *GenrePopularity `json:"most_popular_genre"`
	LeastPopularGenre  *GenrePopularity `json:"least_popular_genre"`
}

// StatisticsUseCase 销售统计用例
type StatisticsUseCase struct {
	txRepo transaction.Repository
}

// NewStatisticsUseCase 创建销售统计用例
func NewStatisticsUseCase(txRepo transaction.Repository) *StatisticsUseCase {
	return &StatisticsUseCase{txRepo: txRepo}
}

// Execute 执行销售统计
// 分类排名基于已售出册数,只统计有销售记录的分类:
// - 最受欢迎 = 销量最高(并列时取分类ID较小者)
// - 最不受欢迎 = 销量最低(并列时取分类ID较小者)
func (uc *StatisticsUseCase) Execute(ctx context.Context) (*StatisticsResult, error) {
	stats, err := uc.txRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	sales, err := uc.txRepo.SalesByGenre(ctx)
	if err != nil {
		return nil, err
	}

	result := &StatisticsResult{
		TotalTransactions:  stats.TotalTransactions,
		AverageTransaction: stats.AverageAmount,
	}

	if len(sales) == 0 {
		return result, nil
	}

	// sales按销量降序、分类ID升序排列:
	// 首行即最受欢迎;最低销量组中首次出现的行即最不受欢迎
	result.MostPopularGenre = toPopularity(sales[0])

	minQty := sales[len(sales)-1].Quantity
	for _, s := range sales {
		if s.Quantity == minQty {
			result.LeastPopularGenre = toPopularity(s)
			break
		}
	}

	return result, nil
}

func toPopularity(s transaction.GenreSales) *GenrePopularity {
	return &GenrePopularity{
		GenreID:  s.GenreID,
		Name:     s.Name,
		Quantity: s.Quantity,
	}
}
