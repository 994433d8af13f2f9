package order

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// newTestBook 测试图书构造辅助
func newTestBook(id uint, title string, price int64, stock int) *book.Book {
	b := book.NewBook("9787115428028", title, "作者", "出版社", price, stock, "", "", nil)
	b.ID = id
	return b
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("正常下单", func(t *testing.T) {
		// 购物车:《Go》10.00元×2 + 《Redis》5.00元×1,合计25.00元
		bookRepo := newFakeBookRepo(
			newTestBook(1, "Go", 1000, 10),
			newTestBook(2, "Redis", 500, 5),
		)
		cartRepo := newFakeCartRepo()
		require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 1, 2)))
		require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 2, 1)))
		orderRepo := newFakeOrderRepo()

		uc := NewCreateOrderUseCase(orderRepo, bookRepo, cartRepo, &fakeTxManager{})
		view, err := uc.Execute(ctx, CreateOrderRequest{
			UserID:          100,
			ShippingAddress: "北京市海淀区",
			PaymentMethod:   "credit_card",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(2500), view.TotalAmount, "总金额应为10.00*2+5.00=25.00元")
		assert.Equal(t, "25.00", view.TotalAmountYuan)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, "pending", view.PaymentStatus)
		assert.NotEmpty(t, view.OrderNo)
		assert.Len(t, view.Items, 2)

		// 价格与书名快照
		for _, item := range view.Items {
			switch item.BookID {
			case 1:
				assert.Equal(t, "Go", item.Title)
				assert.Equal(t, int64(1000), item.Price)
				assert.Equal(t, int64(2000), item.Subtotal)
			case 2:
				assert.Equal(t, "Redis", item.Title)
				assert.Equal(t, int64(500), item.Price)
			}
		}

		// 库存扣减、购物车清空
		assert.Equal(t, 8, bookRepo.stockOf(1))
		assert.Equal(t, 4, bookRepo.stockOf(2))
		assert.Zero(t, cartRepo.countByUser(100), "下单成功后购物车应清空")
	})

	t.Run("空购物车下单失败", func(t *testing.T) {
		bookRepo := newFakeBookRepo(newTestBook(1, "Go", 1000, 10))
		cartRepo := newFakeCartRepo()
		orderRepo := newFakeOrderRepo()

		uc := NewCreateOrderUseCase(orderRepo, bookRepo, cartRepo, &fakeTxManager{})
		_, err := uc.Execute(ctx, CreateOrderRequest{
			UserID:          100,
			ShippingAddress: "北京市海淀区",
			PaymentMethod:   "paypal",
		})

		assert.ErrorIs(t, err, cart.ErrEmptyCart)
		assert.Zero(t, orderRepo.count(), "不应创建订单")
		assert.Equal(t, 10, bookRepo.stockOf(1), "库存不应变化")
	})

	t.Run("库存不足下单失败", func(t *testing.T) {
		bookRepo := newFakeBookRepo(newTestBook(1, "Go语言实战", 1000, 1))
		cartRepo := newFakeCartRepo()
		require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 1, 3)))
		orderRepo := newFakeOrderRepo()

		uc := NewCreateOrderUseCase(orderRepo, bookRepo, cartRepo, &fakeTxManager{})
		_, err := uc.Execute(ctx, CreateOrderRequest{
			UserID:          100,
			ShippingAddress: "北京市海淀区",
			PaymentMethod:   "credit_card",
		})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeInsufficientStock, appErr.Code)
		assert.Contains(t, appErr.Message, "Go语言实战", "错误信息应包含书名")

		assert.Zero(t, orderRepo.count(), "不应创建订单")
		assert.Equal(t, 1, bookRepo.stockOf(1), "库存不应变化")
		assert.Equal(t, 1, cartRepo.countByUser(100), "购物车应保留")
	})

	t.Run("收货地址为空下单失败", func(t *testing.T) {
		uc := NewCreateOrderUseCase(newFakeOrderRepo(), newFakeBookRepo(), newFakeCartRepo(), &fakeTxManager{})
		_, err := uc.Execute(ctx, CreateOrderRequest{
			UserID:        100,
			PaymentMethod: "credit_card",
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("非法支付方式下单失败", func(t *testing.T) {
		uc := NewCreateOrderUseCase(newFakeOrderRepo(), newFakeBookRepo(), newFakeCartRepo(), &fakeTxManager{})
		_, err := uc.Execute(ctx, CreateOrderRequest{
			UserID:          100,
			ShippingAddress: "北京市海淀区",
			PaymentMethod:   "bitcoin",
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("改价后按现价结算", func(t *testing.T) {
		// 加购后商家改价,结算应使用数据库现价而不是加购时价格
		b := newTestBook(1, "Go", 1000, 10)
		bookRepo := newFakeBookRepo(b)
		cartRepo := newFakeCartRepo()
		require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 1, 1)))
		orderRepo := newFakeOrderRepo()

		require.NoError(t, b.UpdatePrice(1500))
		require.NoError(t, bookRepo.Update(ctx, b))

		uc := NewCreateOrderUseCase(orderRepo, bookRepo, cartRepo, &fakeTxManager{})
		view, err := uc.Execute(ctx, CreateOrderRequest{
			UserID:          100,
			ShippingAddress: "北京市海淀区",
			PaymentMethod:   "credit_card",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1500), view.TotalAmount, "应按改价后的现价结算")
		assert.Equal(t, int64(1500), view.Items[0].Price)
	})
}

// TestCreateOrderConcurrent 并发下单防超卖
// 两个买家同时结算同一本仅剩1件库存的书,事务串行化后
// 只能有一单成功,库存恰好归零,不出现负库存
func TestCreateOrderConcurrent(t *testing.T) {
	ctx := context.Background()

	bookRepo := newFakeBookRepo(newTestBook(1, "限量版", 1000, 1))
	cartRepo := newFakeCartRepo()
	require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 1, 1)))
	require.NoError(t, cartRepo.Create(ctx, cart.NewItem(200, 1, 1)))
	orderRepo := newFakeOrderRepo()

	uc := NewCreateOrderUseCase(orderRepo, bookRepo, cartRepo, &fakeTxManager{})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, userID := range []uint{100, 200} {
		wg.Add(1)
		go func(idx int, uid uint) {
			defer wg.Done()
			_, errs[idx] = uc.Execute(ctx, CreateOrderRequest{
				UserID:          uid,
				ShippingAddress: "北京市海淀区",
				PaymentMethod:   "credit_card",
			})
		}(i, userID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, apperrors.ErrCodeInsufficientStock, apperrors.GetAppError(err).Code)
		}
	}

	assert.Equal(t, 1, succeeded, "只能有一单成功")
	assert.Equal(t, 1, orderRepo.count())
	assert.Equal(t, 0, bookRepo.stockOf(1), "库存恰好归零,不为负")
}
