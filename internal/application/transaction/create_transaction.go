package transaction

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	"github.com/xiebiao/bookstore-admin/internal/domain/transaction"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/logger"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
)

// TransactionItem 交易行项目
type TransactionItem struct {
	BookID   uint
	Quantity int
}

// CreateTransactionRequest 创建交易请求
// Username来自认证上下文,仅用于响应回显
type CreateTransactionRequest struct {
	UserID   uint
	Username string
	Items    []TransactionItem
}

// CreateTransactionUseCase 创建交易用例(核心业务流程)
//
// 流程:
//  1. 校验行项目(非空、数量>0),同一图书多行时数量合并
//  2. 批量查询图书,缺失的ID聚合报错
//  3. 按基线库存预校验(合并后的数量),给出明确的库存不足提示
//  4. 事务内写入交易主表+明细,并执行带条件的原子库存扣减;
//     预校验到扣减之间的并发售出由扣减语句兜底,任一步失败整体回滚
//  5. 成功后更新指标、发布领域事件(尽力而为)
type CreateTransactionUseCase struct {
	txRepo    transaction.Repository
	bookRepo  book.Repository
	genreRepo genre.Repository
	txManager transaction.TxManager
	metrics   *metrics.Metrics
	publisher *mq.Publisher // 可为nil(MQ未启用)
}

// NewCreateTransactionUseCase 创建交易创建用例
func NewCreateTransactionUseCase(
	txRepo transaction.Repository,
	bookRepo book.Repository,
	genreRepo genre.Repository,
	txManager transaction.TxManager,
	m *metrics.Metrics,
	publisher *mq.Publisher,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		txRepo:    txRepo,
		bookRepo:  bookRepo,
		genreRepo: genreRepo,
		txManager: txManager,
		metrics:   m,
		publisher: publisher,
	}
}

// transactionCreatedEvent 交易创建事件载荷
type transactionCreatedEvent struct {
	TransactionID uint   `json:"transaction_id"`
	TransactionNo string `json:"transaction_no"`
	UserID        uint   `json:"user_id"`
	TotalAmount   int64  `json:"total_amount"`
}

// Execute 执行交易创建
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, req CreateTransactionRequest) (*TransactionDTO, error) {
	if len(req.Items) == 0 {
		return nil, transaction.ErrEmptyItems
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, transaction.ErrInvalidQuantity
		}
	}

	// 同一图书出现在多行时合并数量,库存按总需求量校验
	ids, required := aggregateItems(req.Items)

	books, err := uc.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	bookByID := make(map[uint]*book.Book, len(books))
	for _, b := range books {
		bookByID[b.ID] = b
	}

	// 缺失的图书ID一次性聚合报错,避免客户端逐个试错
	var missing []uint
	for _, id := range ids {
		if bookByID[id] == nil {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.Newf(apperrors.ErrCodeBookNotFound, "图书不存在: %v", missing)
	}

	// 按请求顺序做库存预校验,第一个不足的图书即报错
	for _, id := range ids {
		b := bookByID[id]
		if b.Stock < required[id] {
			return nil, apperrors.Newf(apperrors.ErrCodeInsufficientStock,
				"《%s》库存不足(需要%d,剩余%d)", b.Title, required[id], b.Stock)
		}
	}

	// 构建明细:按请求行顺序,单价取当前价格快照
	details := make([]transaction.TransactionDetail, 0, len(req.Items))
	for _, item := range req.Items {
		b := bookByID[item.BookID]
		details = append(details, transaction.NewDetail(b.ID, item.Quantity, b.Price))
	}

	t := transaction.NewTransaction(req.UserID, details)

	// 交易写入与库存扣减必须同事务提交:
	// 扣减语句自带库存充足性条件,并发场景下预校验通过但
	// 实际库存不足时在此回滚
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.txRepo.Create(txCtx, t); err != nil {
			return err
		}
		for _, id := range ids {
			if err := uc.bookRepo.UpdateStock(txCtx, id, -required[id]); err != nil {
				if apperrors.GetAppError(err).Code == apperrors.ErrCodeInsufficientStock {
					b := bookByID[id]
					return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
						"《%s》库存不足", b.Title)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.TransactionsCreated.Inc()
	uc.metrics.TransactionAmount.Observe(float64(t.TotalAmount))

	uc.publishCreated(ctx, t)

	dto := toTransactionDTO(t, req.Username, uc.bookRefs(ctx, bookByID))
	return &dto, nil
}

// bookRefs 补全响应明细所需的图书与分类信息
// 交易已提交,分类查询失败只降级为不带分类名,不影响结果返回
func (uc *CreateTransactionUseCase) bookRefs(ctx context.Context, bookByID map[uint]*book.Book) map[uint]bookRef {
	seen := make(map[uint]bool)
	var genreIDs []uint
	for _, b := range bookByID {
		if !seen[b.GenreID] {
			seen[b.GenreID] = true
			genreIDs = append(genreIDs, b.GenreID)
		}
	}

	genreNames := make(map[uint]string, len(genreIDs))
	if genres, err := uc.genreRepo.FindByIDs(ctx, genreIDs); err != nil {
		logger.Warn("查询交易明细分类失败", "error", err)
	} else {
		for _, g := range genres {
			genreNames[g.ID] = g.Name
		}
	}

	refs := make(map[uint]bookRef, len(bookByID))
	for id, b := range bookByID {
		refs[id] = bookRef{
			Title:     b.Title,
			GenreID:   b.GenreID,
			GenreName: genreNames[b.GenreID],
		}
	}
	return refs
}

// publishCreated 发布交易创建事件(尽力而为,失败只记日志)
func (uc *CreateTransactionUseCase) publishCreated(ctx context.Context, t *transaction.Transaction) {
	if uc.publisher == nil {
		return
	}

	event := transactionCreatedEvent{
		TransactionID: t.ID,
		TransactionNo: t.TransactionNo,
		UserID:        t.UserID,
		TotalAmount:   t.TotalAmount,
	}
	if err := uc.publisher.Publish(ctx, "transaction.created", event); err != nil {
		logger.Warn("发布交易创建事件失败",
			"transaction_no", t.TransactionNo,
			"error", err)
	}
}

// aggregateItems 合并行项目
// 返回去重后的图书ID(保持首次出现顺序)与每本图书的总需求量
func aggregateItems(items []TransactionItem) ([]uint, map[uint]int) {
	required := make(map[uint]int, len(items))
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if _, ok := required[item.BookID]; !ok {
			ids = append(ids, item.BookID)
		}
		required[item.BookID] += item.Quantity
	}
	return ids, required
}
