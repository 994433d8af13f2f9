package cart

import (
	"context"
	"errors"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/order"
)

// AddToCartUseCase 加入购物车
// 购物车没有领域服务:条目本身规则很薄,跨聚合的编排(查书、查重)放在应用层
type AddToCartUseCase struct {
	cartRepo cart.Repository
	bookRepo book.Repository
}

// NewAddToCartUseCase 创建加购用例
func NewAddToCartUseCase(cartRepo cart.Repository, bookRepo book.Repository) *AddToCartUseCase {
	return &AddToCartUseCase{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

// Execute 加入购物车
// 规则:
// 1. 图书必须存在
// 2. 加购时做一次提示性库存检查(友好失败);权威判定在结算事务内
// 3. 同一本书重复加购只累加数量,不产生新条目
func (uc *AddToCartUseCase) Execute(ctx context.Context, userID, bookID uint, quantity int) (*cart.Item, error) {
	if quantity <= 0 {
		return nil, cart.ErrInvalidQuantity
	}

	b, err := uc.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	// 提示性检查:不锁不预留,到结算时库存可能已变化
	if !b.HasStock(quantity) {
		return nil, order.NewInsufficientStockError(b.Title, b.Stock, quantity)
	}

	existing, err := uc.cartRepo.FindByUserAndBook(ctx, userID, bookID)
	if err != nil {
		if !errors.Is(err, cart.ErrItemNotFound) {
			return nil, err
		}
		// 新条目
		item := cart.NewItem(userID, bookID, quantity)
		if err := uc.cartRepo.Create(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	}

	// 已有条目,累加数量
	if err := existing.AddQuantity(quantity); err != nil {
		return nil, err
	}
	if err := uc.cartRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
