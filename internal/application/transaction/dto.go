package transaction

import (
	"time"

	"github.com/xiebiao/bookstore-admin/internal/domain/transaction"
)

// TransactionDTO 交易DTO
// 金额单位为分
type TransactionDTO struct {
	ID            uint                   `json:"id"`
	TransactionNo string                 `json:"transaction_no"`
	UserID        uint                   `json:"user_id"`
	Username      string                 `json:"username,omitempty"`
	TotalAmount   int64                  `json:"total_amount"`
	Details       []TransactionDetailDTO `json:"details"`
	CreatedAt     time.Time              `json:"created_at"`
}

// TransactionDetailDTO 交易明细DTO
// 明细富化图书与其所属分类,便于前端直接展示
type TransactionDetailDTO struct {
	BookID    uint   `json:"book_id"`
	BookTitle string `json:"book_title,omitempty"`
	GenreID   uint   `json:"genre_id,omitempty"`
	GenreName string `json:"genre_name,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"` // 成交单价快照(分)
	Subtotal  int64  `json:"subtotal"`
}

// TransactionListResult 交易列表结果
type TransactionListResult struct {
	Items []TransactionDTO `json:"items"`
	Total int64            `json:"total"`
}

// bookRef 明细富化所需的图书信息
type bookRef struct {
	Title     string
	GenreID   uint
	GenreName string
}

// toTransactionDTO 实体转DTO
// books允许缺失条目(图书已被删除时标题与分类留空)
func toTransactionDTO(t *transaction.Transaction, username string, books map[uint]bookRef) TransactionDTO {
	details := make([]TransactionDetailDTO, 0, len(t.Details))
	for _, d := range t.Details {
		ref := books[d.BookID]
		details = append(details, TransactionDetailDTO{
			BookID:    d.BookID,
			BookTitle: ref.Title,
			GenreID:   ref.GenreID,
			GenreName: ref.GenreName,
			Quantity:  d.Quantity,
			Price:     d.Price,
			Subtotal:  d.Subtotal,
		})
	}
	return TransactionDTO{
		ID:            t.ID,
		TransactionNo: t.TransactionNo,
		UserID:        t.UserID,
		Username:      username,
		TotalAmount:   t.TotalAmount,
		Details:       details,
		CreatedAt:     t.CreatedAt,
	}
}
