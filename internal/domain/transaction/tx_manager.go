package transaction

import (
	"context"
)

// TxManager 事务管理器端口
// 应用层通过此接口编排跨仓储的原子操作,
// 具体实现(GORM事务)在infrastructure层。
// fn内通过ctx传递事务句柄,fn返回错误时整体回滚。
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
