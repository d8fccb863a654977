package dto

// TransactionItemRequest 交易行项目
type TransactionItemRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

// CreateTransactionRequest 创建交易请求
// 经手用户取自Token,不由客户端指定
type CreateTransactionRequest struct {
	Items []TransactionItemRequest `json:"items" binding:"required,min=1,dive"`
}
