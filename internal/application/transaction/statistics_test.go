package transaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	domaintx "github.com/xiebiao/bookstore-admin/internal/domain/transaction"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/mysql"
)

type statsTestEnv struct {
	uc        *StatisticsUseCase
	txRepo    domaintx.Repository
	bookRepo  *mysql.BookRepository
	genreRepo genre.Repository
}

func newStatsTestEnv(t *testing.T) *statsTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, mysql.AutoMigrate(db))

	txRepo := mysql.NewTransactionRepository(db)
	return &statsTestEnv{
		uc:        NewStatisticsUseCase(txRepo),
		txRepo:    txRepo,
		bookRepo:  mysql.NewBookRepository(db),
		genreRepo: mysql.NewGenreRepository(db),
	}
}

// sell 在指定分类下建一本书并售出quantity册
func (e *statsTestEnv) sell(t *testing.T, genreName, title, isbn string, price int64, quantity int) {
	t.Helper()
	ctx := context.Background()

	g, err := e.genreRepo.FindByNameFold(ctx, genreName)
	if err != nil {
		g = genre.NewGenre(genreName)
		require.NoError(t, e.genreRepo.Create(ctx, g))
	}

	b := book.NewBook(isbn, title, "作者", "出版社", 2020, price, 1000, "", g.ID)
	require.NoError(t, e.bookRepo.Create(ctx, b))

	tx := domaintx.NewTransaction(1, []domaintx.TransactionDetail{
		domaintx.NewDetail(b.ID, quantity, price),
	})
	require.NoError(t, e.txRepo.Create(ctx, tx))
}

func TestStatistics_Empty(t *testing.T) {
	env := newStatsTestEnv(t)

	result, err := env.uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.TotalTransactions)
	assert.Zero(t, result.AverageTransaction)
	assert.Nil(t, result.MostPopularGenre)
	assert.Nil(t, result.LeastPopularGenre)
}

func TestStatistics_Rankings(t *testing.T) {
	env := newStatsTestEnv(t)

	env.sell(t, "科幻", "三体", "9787536692930", 2300, 5)
	env.sell(t, "历史", "万历十五年", "9787101146127", 2800, 2)
	env.sell(t, "文学", "活着", "9787506365437", 2000, 3)

	result, err := env.uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.TotalTransactions)
	// (5*2300 + 2*2800 + 3*2000) / 3
	assert.InDelta(t, (11500.0+5600.0+6000.0)/3, result.AverageTransaction, 0.001)

	require.NotNil(t, result.MostPopularGenre)
	assert.Equal(t, "科幻", result.MostPopularGenre.Name)
	assert.Equal(t, int64(5), result.MostPopularGenre.Quantity)

	require.NotNil(t, result.LeastPopularGenre)
	assert.Equal(t, "历史", result.LeastPopularGenre.Name)
	assert.Equal(t, int64(2), result.LeastPopularGenre.Quantity)
}

func TestStatistics_TieBreakByGenreID(t *testing.T) {
	env := newStatsTestEnv(t)

	// 两个分类销量相同,并列时取分类ID较小者
	env.sell(t, "科幻", "三体", "9787536692930", 2300, 4)
	env.sell(t, "历史", "万历十五年", "9787101146127", 2800, 4)

	result, err := env.uc.Execute(context.Background())
	require.NoError(t, err)

	require.NotNil(t, result.MostPopularGenre)
	require.NotNil(t, result.LeastPopularGenre)
	assert.Equal(t, "科幻", result.MostPopularGenre.Name)
	assert.Equal(t, "科幻", result.LeastPopularGenre.Name)
}

func TestStatistics_SingleGenre(t *testing.T) {
	env := newStatsTestEnv(t)

	env.sell(t, "科幻", "三体", "9787536692930", 2300, 5)

	result, err := env.uc.Execute(context.Background())
	require.NoError(t, err)

	// 只有一个分类时,最受欢迎与最不受欢迎是同一个
	require.NotNil(t, result.MostPopularGenre)
	require.NotNil(t, result.LeastPopularGenre)
	assert.Equal(t, result.MostPopularGenre.GenreID, result.LeastPopularGenre.GenreID)
}
