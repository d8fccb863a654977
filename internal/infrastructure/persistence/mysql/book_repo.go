package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// BookRepository 图书仓储的GORM实现
// 同时实现genre.BookCounter端口(CountByGenreID)
type BookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Create 创建图书
func (r *BookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			if strings.Contains(err.Error(), "isbn") {
				return book.ErrISBNDuplicate
			}
			return book.ErrTitleDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}
	b.ID = model.ID
	return nil
}

// FindByID 根据ID查找图书
func (r *BookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// FindByIDs 批量查找图书
// 只返回存在的记录,缺失的ID由调用方比对
func (r *BookRepository) FindByIDs(ctx context.Context, ids []uint) ([]*book.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []BookModel
	if err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "批量查询图书失败")
	}

	books := make([]*book.Book, 0, len(models))
	for i := range models {
		books = append(books, toBookEntity(&models[i]))
	}
	return books, nil
}

// FindByISBN 根据ISBN查找图书
func (r *BookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	if err := getDB(ctx, r.db).Where("isbn = ?", isbn).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// FindByTitle 根据书名精确查找图书
func (r *BookRepository) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	var model BookModel
	if err := getDB(ctx, r.db).Where("title = ?", title).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Update 更新图书信息
// 注意:库存不在此处更新,并发安全的库存变更走UpdateStock
func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	if err := getDB(ctx, r.db).Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"title":            b.Title,
			"author":           b.Author,
			"publisher":        b.Publisher,
			"publication_year": b.PublicationYear,
			"price":            b.Price,
			"stock":            b.Stock,
			"description":      b.Description,
			"genre_id":         b.GenreID,
			"updated_at":       b.UpdatedAt,
		}).Error; err != nil {
		if isDuplicateError(err) {
			if strings.Contains(err.Error(), "isbn") {
				return book.ErrISBNDuplicate
			}
			return book.ErrTitleDuplicate
		}
		return apperrors.Wrap(err, "更新图书失败")
	}
	return nil
}

// Delete 删除图书
func (r *BookRepository) Delete(ctx context.Context, id uint) error {
	if err := getDB(ctx, r.db).Delete(&BookModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除图书失败")
	}
	return nil
}

// List 分页查询图书列表
func (r *BookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	db := getDB(ctx, r.db).Model(&BookModel{})

	if params.Keyword != "" {
		like := "%" + params.Keyword + "%"
		db = db.Where("title LIKE ? OR author LIKE ? OR publisher LIKE ?", like, like, like)
	}
	if params.Author != "" {
		db = db.Where("author = ?", params.Author)
	}
	if params.Publisher != "" {
		db = db.Where("publisher = ?", params.Publisher)
	}
	if params.PriceMin > 0 {
		db = db.Where("price >= ?", params.PriceMin)
	}
	if params.PriceMax > 0 {
		db = db.Where("price <= ?", params.PriceMax)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计图书数量失败")
	}

	switch params.SortBy {
	case "price_asc":
		db = db.Order("price ASC")
	case "price_desc":
		db = db.Order("price DESC")
	default:
		db = db.Order("created_at DESC, id DESC")
	}

	var models []BookModel
	offset := (params.Page - 1) * params.PageSize
	if err := db.Offset(offset).Limit(params.PageSize).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, 0, len(models))
	for i := range models {
		books = append(books, toBookEntity(&models[i]))
	}
	return books, total, nil
}

// CountByGenreID 统计某分类下的图书数量
func (r *BookRepository) CountByGenreID(ctx context.Context, genreID uint) (int64, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&BookModel{}).
		Where("genre_id = ?", genreID).
		Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计分类图书数量失败")
	}
	return count, nil
}

// UpdateStock 原子更新库存
// 带条件的UPDATE保证并发扣减不会把库存减成负数:
//
//	UPDATE books SET stock = stock + delta WHERE id = ? AND stock + delta >= 0
//
// 受影响行数为0说明库存不足(或图书不存在),返回ErrInsufficientStock。
// 订单创建时必须在事务内调用,与交易记录写入一起提交或回滚。
func (r *BookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	result := getDB(ctx, r.db).Model(&BookModel{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock + ?", delta),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrInsufficientStock
	}
	return nil
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:              b.ID,
		ISBN:            b.ISBN,
		Title:           b.Title,
		Author:          b.Author,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		Price:           b.Price,
		Stock:           b.Stock,
		Description:     b.Description,
		GenreID:         b.GenreID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:              m.ID,
		ISBN:            m.ISBN,
		Title:           m.Title,
		Author:          m.Author,
		Publisher:       m.Publisher,
		PublicationYear: m.PublicationYear,
		Price:           m.Price,
		Stock:           m.Stock,
		Description:     m.Description,
		GenreID:         m.GenreID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
