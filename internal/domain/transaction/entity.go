package transaction

import (
	"time"
)

// Transaction 销售交易实体(聚合根)
// DDD设计说明:
// 1. Transaction是交易聚合的根,TransactionDetail是聚合内部实体
// 2. 交易一旦创建即不可变(只追加,不更新)
// 3. 明细中的Price是下单时刻的价格快照,图书后续调价不影响历史交易
// 4. TotalAmount冗余存储,避免统计时重复聚合明细
type Transaction struct {
	ID            uint
	TransactionNo string // 交易号(业务唯一标识)
	UserID        uint   // 经手用户ID
	TotalAmount   int64  // 交易总金额(单位:分)
	Details       []TransactionDetail
	CreatedAt     time.Time
}

// TransactionDetail 交易明细(行项目)
type TransactionDetail struct {
	ID            uint
	TransactionID uint
	BookID        uint
	Quantity      int
	Price         int64 // 成交单价快照(分)
	Subtotal      int64 // 小计 = Price * Quantity
}

// NewDetail 创建交易明细,小计由单价与数量推导
func NewDetail(bookID uint, quantity int, price int64) TransactionDetail {
	return TransactionDetail{
		BookID:   bookID,
		Quantity: quantity,
		Price:    price,
		Subtotal: price * int64(quantity),
	}
}

// NewTransaction 创建交易(工厂方法)
// 总金额由明细小计求和得出,保证一致性
func NewTransaction(userID uint, details []TransactionDetail) *Transaction {
	t := &Transaction{
		TransactionNo: GenerateTransactionNo(),
		UserID:        userID,
		Details:       details,
		CreatedAt:     time.Now(),
	}
	t.TotalAmount = t.CalculateTotal()
	return t
}

// CalculateTotal 计算交易总金额
func (t *Transaction) CalculateTotal() int64 {
	var total int64
	for _, d := range t.Details {
		total += d.Subtotal
	}
	return total
}
