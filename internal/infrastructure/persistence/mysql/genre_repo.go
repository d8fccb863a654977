package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// GenreRepository 分类仓储的GORM实现
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建分类仓储
func NewGenreRepository(db *gorm.DB) genre.Repository {
	return &GenreRepository{db: db}
}

// Create 创建分类
func (r *GenreRepository) Create(ctx context.Context, g *genre.Genre) error {
	model := toGenreModel(g)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return genre.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建分类失败")
	}
	g.ID = model.ID
	return nil
}

// FindByID 根据ID查找分类
func (r *GenreRepository) FindByID(ctx context.Context, id uint) (*genre.Genre, error) {
	var model GenreModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toGenreEntity(&model), nil
}

// FindByName 根据名称精确查找分类
func (r *GenreRepository) FindByName(ctx context.Context, name string) (*genre.Genre, error) {
	var model GenreModel
	if err := getDB(ctx, r.db).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toGenreEntity(&model), nil
}

// FindByNameFold 根据名称查找分类(不区分大小写)
// LOWER()在MySQL与sqlite下行为一致
func (r *GenreRepository) FindByNameFold(ctx context.Context, name string) (*genre.Genre, error) {
	var model GenreModel
	if err := getDB(ctx, r.db).Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toGenreEntity(&model), nil
}

// FindByIDs 批量查找分类
func (r *GenreRepository) FindByIDs(ctx context.Context, ids []uint) ([]*genre.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []GenreModel
	if err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "批量查询分类失败")
	}

	genres := make([]*genre.Genre, 0, len(models))
	for i := range models {
		genres = append(genres, toGenreEntity(&models[i]))
	}
	return genres, nil
}

// Update 更新分类
func (r *GenreRepository) Update(ctx context.Context, g *genre.Genre) error {
	if err := getDB(ctx, r.db).Model(&GenreModel{}).
		Where("id = ?", g.ID).
		Updates(map[string]interface{}{
			"name":       g.Name,
			"updated_at": g.UpdatedAt,
		}).Error; err != nil {
		if isDuplicateError(err) {
			return genre.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "更新分类失败")
	}
	return nil
}

// Delete 删除分类
func (r *GenreRepository) Delete(ctx context.Context, id uint) error {
	if err := getDB(ctx, r.db).Delete(&GenreModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除分类失败")
	}
	return nil
}

// List 分页查询分类列表
func (r *GenreRepository) List(ctx context.Context, page, pageSize int) ([]*genre.Genre, int64, error) {
	db := getDB(ctx, r.db)

	var total int64
	if err := db.Model(&GenreModel{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计分类数量失败")
	}

	var models []GenreModel
	offset := (page - 1) * pageSize
	if err := db.Order("id ASC").Offset(offset).Limit(pageSize).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类列表失败")
	}

	genres := make([]*genre.Genre, 0, len(models))
	for i := range models {
		genres = append(genres, toGenreEntity(&models[i]))
	}
	return genres, total, nil
}

func toGenreModel(g *genre.Genre) *GenreModel {
	return &GenreModel{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func toGenreEntity(m *GenreModel) *genre.Genre {
	return &genre.Genre{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
