package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/order"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

func TestAdminListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("按订单号精确查询", func(t *testing.T) {
		bookRepo := newFakeBookRepo(newTestBook(1, "Go", 1000, 10))
		cartRepo := newFakeCartRepo()
		orderRepo := newFakeOrderRepo()
		require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 1, 2)))
		placed := placeTestOrder(t, orderRepo, bookRepo, cartRepo, 100)

		uc := NewAdminOrderUseCase(orderRepo)
		result, err := uc.List(ctx, AdminListRequest{OrderNo: placed.OrderNo})
		require.NoError(t, err)
		require.Len(t, result.Orders, 1)
		assert.Equal(t, placed.OrderID, result.Orders[0].OrderID)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("订单号不存在", func(t *testing.T) {
		uc := NewAdminOrderUseCase(newFakeOrderRepo())
		_, err := uc.List(ctx, AdminListRequest{OrderNo: "20260830000000999999"})
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("按状态过滤", func(t *testing.T) {
		bookRepo := newFakeBookRepo(newTestBook(1, "Go", 1000, 10))
		cartRepo := newFakeCartRepo()
		orderRepo := newFakeOrderRepo()
		require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 1, 1)))
		placed := placeTestOrder(t, orderRepo, bookRepo, cartRepo, 100)

		uc := NewAdminOrderUseCase(orderRepo)
		result, err := uc.List(ctx, AdminListRequest{Status: "pending"})
		require.NoError(t, err)
		require.Len(t, result.Orders, 1)
		assert.Equal(t, placed.OrderNo, result.Orders[0].OrderNo)

		result, err = uc.List(ctx, AdminListRequest{Status: "shipped"})
		require.NoError(t, err)
		assert.Empty(t, result.Orders)
	})

	t.Run("非法状态token", func(t *testing.T) {
		uc := NewAdminOrderUseCase(newFakeOrderRepo())
		_, err := uc.List(ctx, AdminListRequest{Status: "unknown"})
		require.Error(t, err)
	})

	t.Run("非法日期格式", func(t *testing.T) {
		uc := NewAdminOrderUseCase(newFakeOrderRepo())
		_, err := uc.List(ctx, AdminListRequest{StartDate: "2026/08/30"})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)
	})
}

func TestOrderStats(t *testing.T) {
	ctx := context.Background()

	t.Run("周期内统计", func(t *testing.T) {
		bookRepo := newFakeBookRepo(newTestBook(1, "Go", 1000, 10))
		cartRepo := newFakeCartRepo()
		orderRepo := newFakeOrderRepo()
		require.NoError(t, cartRepo.Create(ctx, cart.NewItem(100, 1, 3)))
		placeTestOrder(t, orderRepo, bookRepo, cartRepo, 100)

		uc := NewAdminOrderUseCase(orderRepo)
		stats, err := uc.Stats(ctx, "month")
		require.NoError(t, err)
		assert.Equal(t, "month", stats.Period)
		assert.Equal(t, int64(1), stats.TotalOrders)
		// 未支付订单不计入营收
		assert.Equal(t, int64(0), stats.TotalRevenue)
		assert.Equal(t, int64(1), stats.CountByStatus["pending"])
	})

	t.Run("空period默认month", func(t *testing.T) {
		uc := NewAdminOrderUseCase(newFakeOrderRepo())
		stats, err := uc.Stats(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "month", stats.Period)
	})

	t.Run("非法period", func(t *testing.T) {
		uc := NewAdminOrderUseCase(newFakeOrderRepo())
		_, err := uc.Stats(ctx, "quarter")
		require.Error(t, err)
	})
}
