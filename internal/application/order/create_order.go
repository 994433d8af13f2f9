package order

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/order"
)

// CreateOrderUseCase 结算购物车、创建订单
// 这是整个项目最核心的用例:事务处理、悲观锁防超卖、价格快照
type CreateOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	cartRepo  cart.Repository
	txManager TxManager
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	cartRepo cart.Repository,
	txManager TxManager,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		cartRepo:  cartRepo,
		txManager: txManager,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	UserID          uint                // 买家用户ID(从JWT中提取)
	ShippingAddress string              // 收货地址,不能为空
	PaymentMethod   order.PaymentMethod // 支付方式(固定枚举)
	Notes           string              // 买家备注,可选
}

// Execute 执行下单用例
//
// 核心问题:库存超卖
// 两个买家同时结算同一本书仅剩的库存,先读库存再扣减的朴素实现
// 会让两单都通过校验(check-then-act竞态),最后超卖。
//
// 解法:单事务 + 悲观锁
//  1. 开启事务,读取购物车
//  2. SELECT ... FOR UPDATE 逐本锁定图书行
//  3. 锁内重新校验库存(不信任任何事务外的读取)
//  4. 按锁定时的现价计算总额、生成价格快照
//  5. 创建订单+明细,扣减库存(原子UPDATE带非负守卫),清空购物车
//  6. COMMIT释放锁;任何一步失败整体回滚,不存在半个订单
//
// 并发结果:同一本书的两个结算请求被行锁串行化,库存只够一单时,
// 后到的事务在步骤3失败,返回库存不足错误。
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderView, error) {
	// 1. 参数校验(业务规则,与HTTP绑定校验解耦)
	if req.ShippingAddress == "" {
		return nil, order.ErrEmptyShippingAddress
	}
	if !req.PaymentMethod.IsValid() {
		return nil, order.ErrInvalidPaymentMethod
	}

	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 2. 事务内读取购物车
		cartItems, err := uc.cartRepo.ListByUserID(txCtx, req.UserID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return cart.ErrEmptyCart
		}

		// 3. 锁定图书行并校验库存
		// 加购时的库存检查只是提示性的,这里的锁内校验才是权威判定
		bookMap := make(map[uint]*book.Book, len(cartItems))
		for _, item := range cartItems {
			b, err := uc.bookRepo.LockByID(txCtx, item.BookID)
			if err != nil {
				return err
			}

			if !b.HasStock(item.Quantity) {
				return order.NewInsufficientStockError(b.Title, b.Stock, item.Quantity)
			}

			bookMap[item.BookID] = b
		}

		// 4. 计算总额、生成价格快照
		// 使用锁定时刻的数据库现价,而不是加购时或前端传递的价格
		var totalAmount int64
		orderItems := make([]order.Item, len(cartItems))
		for i, item := range cartItems {
			b := bookMap[item.BookID]
			orderItems[i] = order.Item{
				BookID:   item.BookID,
				Title:    b.Title,
				Quantity: item.Quantity,
				Price:    b.Price, // 价格快照
			}
			totalAmount += b.Price * int64(item.Quantity)
		}

		// 5. 创建订单(头+明细)
		orderNo := order.GenerateOrderNo()
		newOrder := order.NewOrder(orderNo, req.UserID, orderItems, totalAmount,
			req.ShippingAddress, req.PaymentMethod, req.Notes)

		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// 6. 扣减库存
		// UpdateStock自带 stock + delta >= 0 守卫,这里理论上不会失败
		// (行已被锁定且已校验);失败则整个事务回滚
		for _, item := range cartItems {
			if err := uc.bookRepo.UpdateStock(txCtx, item.BookID, -item.Quantity); err != nil {
				return err
			}
		}

		// 7. 清空购物车(与订单创建同一事务,不存在"下了单购物车还在"的中间态)
		if err := uc.cartRepo.ClearByUserID(txCtx, req.UserID); err != nil {
			return err
		}

		result = newOrder
		return nil
	})

	if err != nil {
		return nil, err
	}

	return NewOrderView(result), nil
}
