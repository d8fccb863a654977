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
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
)

type createTestEnv struct {
	uc       *CreateTransactionUseCase
	txRepo   domaintx.Repository
	bookRepo *mysql.BookRepository
	db       *gorm.DB
}

func newCreateTestEnv(t *testing.T) *createTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, mysql.AutoMigrate(db))

	txRepo := mysql.NewTransactionRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	genreRepo := mysql.NewGenreRepository(db)

	return &createTestEnv{
		uc:       NewCreateTransactionUseCase(txRepo, bookRepo, genreRepo, mysql.NewTxManager(db), metrics.New(), nil),
		txRepo:   txRepo,
		bookRepo: bookRepo,
		db:       db,
	}
}

func (e *createTestEnv) seedBook(t *testing.T, title, isbn string, price int64, stock int) *book.Book {
	t.Helper()

	ctx := context.Background()
	g, err := mysql.NewGenreRepository(e.db).FindByNameFold(ctx, "默认分类")
	if err != nil {
		g = genre.NewGenre("默认分类")
		require.NoError(t, mysql.NewGenreRepository(e.db).Create(ctx, g))
	}

	b := book.NewBook(isbn, title, "作者", "出版社", 2020, price, stock, "", g.ID)
	require.NoError(t, e.bookRepo.Create(ctx, b))
	return b
}

func TestCreateTransaction_Success(t *testing.T) {
	env := newCreateTestEnv(t)
	ctx := context.Background()

	b1 := env.seedBook(t, "三体", "9787536692930", 2300, 10)
	b2 := env.seedBook(t, "基地", "9787544253999", 3500, 5)

	result, err := env.uc.Execute(ctx, CreateTransactionRequest{
		UserID:   1,
		Username: "cashier",
		Items: []TransactionItem{
			{BookID: b1.ID, Quantity: 2},
			{BookID: b2.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// 总额 = 2*2300 + 1*3500
	assert.Equal(t, int64(8100), result.TotalAmount)
	assert.NotEmpty(t, result.TransactionNo)
	assert.Equal(t, "cashier", result.Username)
	require.Len(t, result.Details, 2)
	assert.Equal(t, "三体", result.Details[0].BookTitle)
	assert.Equal(t, b1.GenreID, result.Details[0].GenreID)
	assert.Equal(t, "默认分类", result.Details[0].GenreName)
	assert.Equal(t, int64(2300), result.Details[0].Price)
	assert.Equal(t, int64(4600), result.Details[0].Subtotal)

	// 库存已扣减
	found, err := env.bookRepo.FindByID(ctx, b1.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, found.Stock)
	found, err = env.bookRepo.FindByID(ctx, b2.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, found.Stock)

	// 交易已持久化
	saved, err := env.txRepo.FindByID(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8100), saved.TotalAmount)
}

func TestCreateTransaction_PriceSnapshot(t *testing.T) {
	env := newCreateTestEnv(t)
	ctx := context.Background()

	b := env.seedBook(t, "三体", "9787536692930", 2300, 10)

	result, err := env.uc.Execute(ctx, CreateTransactionRequest{
		UserID: 1,
		Items:  []TransactionItem{{BookID: b.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// 调价不影响已有交易的成交价
	b.Price = 9900
	require.NoError(t, env.bookRepo.Update(ctx, b))

	saved, err := env.txRepo.FindByID(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2300), saved.Details[0].Price)
	assert.Equal(t, int64(2300), saved.TotalAmount)
}

func TestCreateTransaction_InsufficientStock(t *testing.T) {
	env := newCreateTestEnv(t)
	ctx := context.Background()

	b := env.seedBook(t, "三体", "9787536692930", 2300, 3)

	_, err := env.uc.Execute(ctx, CreateTransactionRequest{
		UserID: 1,
		Items:  []TransactionItem{{BookID: b.ID, Quantity: 5}},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInsufficientStock, apperrors.GetAppError(err).Code)

	// 失败的交易不留下任何痕迹
	_, total, err := env.txRepo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)

	found, err := env.bookRepo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Stock)
}

func TestCreateTransaction_DuplicateBookAggregated(t *testing.T) {
	env := newCreateTestEnv(t)
	ctx := context.Background()

	// 同一图书两行各3册,合计6 > 库存5,必须拒绝
	b := env.seedBook(t, "三体", "9787536692930", 2300, 5)

	_, err := env.uc.Execute(ctx, CreateTransactionRequest{
		UserID: 1,
		Items: []TransactionItem{
			{BookID: b.ID, Quantity: 3},
			{BookID: b.ID, Quantity: 3},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInsufficientStock, apperrors.GetAppError(err).Code)

	found, err := env.bookRepo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Stock)
}

func TestCreateTransaction_DuplicateBookWithinStock(t *testing.T) {
	env := newCreateTestEnv(t)
	ctx := context.Background()

	b := env.seedBook(t, "三体", "9787536692930", 2300, 5)

	result, err := env.uc.Execute(ctx, CreateTransactionRequest{
		UserID: 1,
		Items: []TransactionItem{
			{BookID: b.ID, Quantity: 2},
			{BookID: b.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 两行明细分别保留,库存扣减合并后的总量
	require.Len(t, result.Details, 2)
	assert.Equal(t, int64(9200), result.TotalAmount)

	found, err := env.bookRepo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Stock)
}

func TestCreateTransaction_BookNotFound(t *testing.T) {
	env := newCreateTestEnv(t)

	b := env.seedBook(t, "三体", "9787536692930", 2300, 10)

	_, err := env.uc.Execute(context.Background(), CreateTransactionRequest{
		UserID: 1,
		Items: []TransactionItem{
			{BookID: b.ID, Quantity: 1},
			{BookID: 998, Quantity: 1},
			{BookID: 999, Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeBookNotFound, apperrors.GetAppError(err).Code)
}

func TestCreateTransaction_InvalidItems(t *testing.T) {
	env := newCreateTestEnv(t)
	ctx := context.Background()

	_, err := env.uc.Execute(ctx, CreateTransactionRequest{UserID: 1})
	assert.ErrorIs(t, err, domaintx.ErrEmptyItems)

	b := env.seedBook(t, "三体", "9787536692930", 2300, 10)
	_, err = env.uc.Execute(ctx, CreateTransactionRequest{
		UserID: 1,
		Items:  []TransactionItem{{BookID: b.ID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domaintx.ErrInvalidQuantity)
}
