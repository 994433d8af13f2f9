package cart

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/cart"
)

// ManageCartUseCase 购物车条目管理(改数量、删除、清空)
type ManageCartUseCase struct {
	cartRepo cart.Repository
}

// NewManageCartUseCase 创建购物车管理用例
func NewManageCartUseCase(cartRepo cart.Repository) *ManageCartUseCase {
	return &ManageCartUseCase{cartRepo: cartRepo}
}

// UpdateQuantity 修改条目数量
// 越权操作按"条目不存在"处理
func (uc *ManageCartUseCase) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*cart.Item, error) {
	item, err := uc.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsOwnedBy(userID) {
		return nil, cart.ErrItemNotFound
	}

	if err := item.SetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := uc.cartRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem 移除条目
func (uc *ManageCartUseCase) RemoveItem(ctx context.Context, userID, itemID uint) error {
	item, err := uc.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !item.IsOwnedBy(userID) {
		return cart.ErrItemNotFound
	}

	return uc.cartRepo.Delete(ctx, item.ID)
}

// Clear 清空购物车(幂等,空购物车清空也成功)
func (uc *ManageCartUseCase) Clear(ctx context.Context, userID uint) error {
	return uc.cartRepo.ClearByUserID(ctx, userID)
}
