package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
)

// setupTestDB 基于sqlite内存库的测试数据库
// 模型与生产环境共用,SQL写法保证两种方言下行为一致
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	return db
}

// seedGenre 插入测试分类
func seedGenre(t *testing.T, db *gorm.DB, name string) *genre.Genre {
	t.Helper()

	repo := NewGenreRepository(db)
	g := genre.NewGenre(name)
	require.NoError(t, repo.Create(context.Background(), g))
	return g
}

// seedBook 插入测试图书
func seedBook(t *testing.T, db *gorm.DB, title, isbn string, price int64, stock int, genreID uint) *book.Book {
	t.Helper()

	repo := NewBookRepository(db)
	b := book.NewBook(isbn, title, "测试作者", "测试出版社", 2020, price, stock, "", genreID)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}
