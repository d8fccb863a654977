package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/transaction"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// TransactionRepository 交易仓储的GORM实现
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository 创建交易仓储
func NewTransactionRepository(db *gorm.DB) transaction.Repository {
	return &TransactionRepository{db: db}
}

// Create 创建交易(含明细)
// GORM关联写入:主表与明细在同一条Create中插入
func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	model := toTransactionModel(t)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建交易失败")
	}

	// 回填数据库生成的ID
	t.ID = model.ID
	for i := range model.Details {
		t.Details[i].ID = model.Details[i].ID
		t.Details[i].TransactionID = model.ID
	}
	return nil
}

// FindByID 根据ID查找交易(含明细)
func (r *TransactionRepository) FindByID(ctx context.Context, id uint) (*transaction.Transaction, error) {
	var model TransactionModel
	if err := getDB(ctx, r.db).Preload("Details").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, transaction.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(err, "查询交易失败")
	}
	return toTransactionEntity(&model), nil
}

// List 分页查询交易列表(按创建时间倒序)
func (r *TransactionRepository) List(ctx context.Context, page, pageSize int) ([]*transaction.Transaction, int64, error) {
	db := getDB(ctx, r.db)

	var total int64
	if err := db.Model(&TransactionModel{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计交易数量失败")
	}

	var models []TransactionModel
	offset := (page - 1) * pageSize
	if err := db.Preload("Details").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(pageSize).
		Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询交易列表失败")
	}

	txs := make([]*transaction.Transaction, 0, len(models))
	for i := range models {
		txs = append(txs, toTransactionEntity(&models[i]))
	}
	return txs, total, nil
}

// Statistics 聚合统计:交易总数与平均交易金额
// COALESCE保证无交易时AVG返回0而非NULL
func (r *TransactionRepository) Statistics(ctx context.Context) (*transaction.Statistics, error) {
	var result struct {
		Total   int64
		Average float64
	}
	if err := getDB(ctx, r.db).Model(&TransactionModel{}).
		Select("COUNT(*) AS total, COALESCE(AVG(total_amount), 0) AS average").
		Scan(&result).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询交易统计失败")
	}
	return &transaction.Statistics{
		TotalTransactions: result.Total,
		AverageAmount:     result.Average,
	}, nil
}

// SalesByGenre 按分类统计销量
// 三表连接:交易明细 → 图书 → 分类,按售出册数降序、分类ID升序
func (r *TransactionRepository) SalesByGenre(ctx context.Context) ([]transaction.GenreSales, error) {
	var rows []struct {
		GenreID  uint
		Name     string
		Quantity int64
	}
	if err := getDB(ctx, r.db).
		Table("transaction_details AS td").
		Select("g.id AS genre_id, g.name AS name, SUM(td.quantity) AS quantity").
		Joins("JOIN books AS b ON b.id = td.book_id").
		Joins("JOIN genres AS g ON g.id = b.genre_id").
		Group("g.id, g.name").
		Order("quantity DESC, genre_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类销量失败")
	}

	sales := make([]transaction.GenreSales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, transaction.GenreSales{
			GenreID:  row.GenreID,
			Name:     row.Name,
			Quantity: row.Quantity,
		})
	}
	return sales, nil
}

func toTransactionModel(t *transaction.Transaction) *TransactionModel {
	details := make([]TransactionDetailModel, 0, len(t.Details))
	for _, d := range t.Details {
		details = append(details, TransactionDetailModel{
			BookID:   d.BookID,
			Quantity: d.Quantity,
			Price:    d.Price,
			Subtotal: d.Subtotal,
		})
	}
	return &TransactionModel{
		ID:            t.ID,
		TransactionNo: t.TransactionNo,
		UserID:        t.UserID,
		TotalAmount:   t.TotalAmount,
		CreatedAt:     t.CreatedAt,
		Details:       details,
	}
}

func toTransactionEntity(m *TransactionModel) *transaction.Transaction {
	details := make([]transaction.TransactionDetail, 0, len(m.Details))
	for _, d := range m.Details {
		details = append(details, transaction.TransactionDetail{
			ID:            d.ID,
			TransactionID: d.TransactionID,
			BookID:        d.BookID,
			Quantity:      d.Quantity,
			Price:         d.Price,
			Subtotal:      d.Subtotal,
		})
	}
	return &transaction.Transaction{
		ID:            m.ID,
		TransactionNo: m.TransactionNo,
		UserID:        m.UserID,
		TotalAmount:   m.TotalAmount,
		Details:       details,
		CreatedAt:     m.CreatedAt,
	}
}
