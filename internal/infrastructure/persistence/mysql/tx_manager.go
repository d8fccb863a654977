package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/transaction"
)

// txKey 事务上下文键(非导出类型,避免与其他包的键冲突)
type txKey struct{}

// TxManager GORM事务管理器
// 事务句柄通过context传递给同一事务内的仓储调用,
// 仓储通过getDB(ctx)透明地拿到事务连接。
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) transaction.TxManager {
	return &TxManager{db: db}
}

// Transaction 在数据库事务中执行fn
// fn返回错误或panic时回滚,否则提交
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// getDB 从context中取事务连接,没有则用默认连接
// 所有仓储实现统一经此函数取连接,保证事务内外行为一致
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
