package order

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/order"
	"github.com/xiebiao/bookmall/internal/domain/user"
)

// GetOrderUseCase 查询订单详情
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 查询订单详情
// 普通用户只能看自己的订单,管理员可以看任意订单;
// 越权访问统一返回ErrOrderNotFound,不暴露订单是否存在
func (uc *GetOrderUseCase) Execute(ctx context.Context, userID uint, role user.Role, orderID uint) (*OrderView, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if role != user.RoleAdmin && !o.IsOwnedBy(userID) {
		return nil, order.ErrOrderNotFound
	}

	return NewOrderView(o), nil
}
