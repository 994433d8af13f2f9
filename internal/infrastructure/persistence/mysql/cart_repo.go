package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/cart"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
// 设计说明:
// 1. ListByUserID/ClearByUserID通过dbFromContext参与下单事务
// 2. (user_id, book_id)唯一索引兜底防止重复行
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// Create 新增购物车条目
func (r *cartRepository) Create(ctx context.Context, item *cart.Item) error {
	model := toCartItemModel(item)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "添加购物车失败")
	}

	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据条目ID查找
func (r *cartRepository) FindByID(ctx context.Context, id uint) (*cart.Item, error) {
	var model CartItemModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	return toCartItemEntity(&model), nil
}

// FindByUserAndBook 查找用户对某本书的条目
func (r *cartRepository) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*cart.Item, error) {
	var model CartItemModel
	err := dbFromContext(ctx, r.db).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	return toCartItemEntity(&model), nil
}

// ListByUserID 查询用户的全部购物车条目(按加入时间排序)
func (r *cartRepository) ListByUserID(ctx context.Context, userID uint) ([]*cart.Item, error) {
	var models []CartItemModel
	err := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	items := make([]*cart.Item, len(models))
	for i := range models {
		items[i] = toCartItemEntity(&models[i])
	}
	return items, nil
}

// Update 更新条目数量
func (r *cartRepository) Update(ctx context.Context, item *cart.Item) error {
	result := dbFromContext(ctx, r.db).
		Model(&CartItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"quantity":   item.Quantity,
			"updated_at": item.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车失败")
	}

	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}

	return nil
}

// Delete 删除条目
func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	result := dbFromContext(ctx, r.db).Delete(&CartItemModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车条目失败")
	}

	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}

	return nil
}

// ClearByUserID 清空用户购物车
// 下单事务的最后一步调用;清空0行不算错误(主动清空空购物车是幂等的)
func (r *cartRepository) ClearByUserID(ctx context.Context, userID uint) error {
	err := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&CartItemModel{}).Error

	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toCartItemModel(item *cart.Item) *CartItemModel {
	return &CartItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		BookID:    item.BookID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func toCartItemEntity(model *CartItemModel) *cart.Item {
	return &cart.Item{
		ID:        model.ID,
		UserID:    model.UserID,
		BookID:    model.BookID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
