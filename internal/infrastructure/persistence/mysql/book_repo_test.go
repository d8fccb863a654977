package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
)

func TestBookRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	g := seedGenre(t, db, "科幻")
	b := seedBook(t, db, "三体", "9787536692930", 2300, 10, g.ID)
	require.NotZero(t, b.ID)

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "三体", found.Title)
	assert.Equal(t, int64(2300), found.Price)
	assert.Equal(t, 10, found.Stock)

	byISBN, err := repo.FindByISBN(ctx, "9787536692930")
	require.NoError(t, err)
	assert.Equal(t, b.ID, byISBN.ID)

	byTitle, err := repo.FindByTitle(ctx, "三体")
	require.NoError(t, err)
	assert.Equal(t, b.ID, byTitle.ID)
}

func TestBookRepository_Create_DuplicateTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)

	g := seedGenre(t, db, "科幻")
	seedBook(t, db, "三体", "9787536692930", 2300, 10, g.ID)

	dup := book.NewBook("9787536692931", "三体", "作者", "出版社", 2020, 1000, 5, "", g.ID)
	err := repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, book.ErrTitleDuplicate)
}

func TestBookRepository_FindByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	g := seedGenre(t, db, "科幻")
	b1 := seedBook(t, db, "三体", "9787536692930", 2300, 10, g.ID)
	b2 := seedBook(t, db, "球状闪电", "9787536682361", 1800, 5, g.ID)

	// 缺失的ID(999)不报错,只返回存在的记录
	books, err := repo.FindByIDs(ctx, []uint{b1.ID, b2.ID, 999})
	require.NoError(t, err)
	assert.Len(t, books, 2)

	books, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBookRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	g := seedGenre(t, db, "科幻")
	seedBook(t, db, "三体", "9787536692930", 2300, 10, g.ID)
	seedBook(t, db, "球状闪电", "9787536682361", 1800, 5, g.ID)
	seedBook(t, db, "基地", "9787544253999", 3500, 8, g.ID)

	// 关键词搜索
	books, total, err := repo.List(ctx, book.ListParams{Page: 1, PageSize: 10, Keyword: "三体"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, books, 1)
	assert.Equal(t, "三体", books[0].Title)

	// 价格区间
	books, total, err = repo.List(ctx, book.ListParams{Page: 1, PageSize: 10, PriceMin: 2000, PriceMax: 3000})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// 价格升序
	books, _, err = repo.List(ctx, book.ListParams{Page: 1, PageSize: 10, SortBy: "price_asc"})
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, int64(1800), books[0].Price)
	assert.Equal(t, int64(3500), books[2].Price)
}

func TestBookRepository_CountByGenreID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	g1 := seedGenre(t, db, "科幻")
	g2 := seedGenre(t, db, "历史")
	seedBook(t, db, "三体", "9787536692930", 2300, 10, g1.ID)
	seedBook(t, db, "球状闪电", "9787536682361", 1800, 5, g1.ID)

	count, err := repo.CountByGenreID(ctx, g1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByGenreID(ctx, g2.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBookRepository_UpdateStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	g := seedGenre(t, db, "科幻")
	b := seedBook(t, db, "三体", "9787536692930", 2300, 10, g.ID)

	// 正常扣减
	require.NoError(t, repo.UpdateStock(ctx, b.ID, -3))
	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.Stock)

	// 补货
	require.NoError(t, repo.UpdateStock(ctx, b.ID, 5))
	found, _ = repo.FindByID(ctx, b.ID)
	assert.Equal(t, 12, found.Stock)

	// 超量扣减被拒绝,库存不变
	err = repo.UpdateStock(ctx, b.ID, -13)
	assert.ErrorIs(t, err, book.ErrInsufficientStock)
	found, _ = repo.FindByID(ctx, b.ID)
	assert.Equal(t, 12, found.Stock)

	// 图书不存在
	err = repo.UpdateStock(ctx, 999, -1)
	assert.ErrorIs(t, err, book.ErrInsufficientStock)
}
