package order

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/order"
)

// CancelOrderUseCase 取消订单
// 取消与库存回补必须在同一事务中完成,否则会出现"单取消了库存没回来"
type CancelOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	txManager TxManager
}

// NewCancelOrderUseCase 创建取消订单用例
func NewCancelOrderUseCase(orderRepo order.Repository, bookRepo book.Repository, txManager TxManager) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// Execute 取消订单
// 规则:只有订单归属人可取消;只有pending/processing状态可取消;
// 取消时按明细数量回补库存
func (uc *CancelOrderUseCase) Execute(ctx context.Context, userID, orderID uint) (*OrderView, error) {
	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.FindByID(txCtx, orderID)
		if err != nil {
			return err
		}

		// 归属校验:访问他人订单按"不存在"处理,不泄露订单存在性
		if !o.IsOwnedBy(userID) {
			return order.ErrOrderNotFound
		}

		if err := o.Cancel(); err != nil {
			return err
		}

		if err := uc.orderRepo.Update(txCtx, o); err != nil {
			return err
		}

		// 回补库存:正向delta,UpdateStock的非负守卫对加库存恒通过
		for _, item := range o.Items {
			if err := uc.bookRepo.UpdateStock(txCtx, item.BookID, item.Quantity); err != nil {
				return err
			}
		}

		result = o
		return nil
	})

	if err != nil {
		return nil, err
	}

	return NewOrderView(result), nil
}
