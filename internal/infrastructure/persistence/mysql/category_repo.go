package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/category"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// categoryRepository 分类仓储实现(MySQL)
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

// Create 创建分类
func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrCategoryDuplicate
		}
		return apperrors.Wrap(err, "创建分类失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找分类
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	return toCategoryEntity(&model), nil
}

// List 查询全部分类(按名称排序)
func (r *categoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var models []CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

// Update 更新分类
func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrCategoryDuplicate
		}
		return apperrors.Wrap(err, "更新分类失败")
	}

	c.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除分类及其与图书的关联关系(不删图书)
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&CategoryModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}

	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}

	// 清理关联表
	if err := r.db.WithContext(ctx).
		Table("book_categories").
		Where("category_model_id = ?", id).
		Delete(nil).Error; err != nil {
		return apperrors.Wrap(err, "清理分类关联失败")
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryEntity(model *CategoryModel) *category.Category {
	return &category.Category{
		ID:          model.ID,
		Name:        model.Name,
		Slug:        model.Slug,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
