package order

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/order"
)

// UpdateStatusUseCase 管理员更新订单状态/支付状态
type UpdateStatusUseCase struct {
	orderRepo order.Repository
}

// NewUpdateStatusUseCase 创建状态更新用例
func NewUpdateStatusUseCase(orderRepo order.Repository) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{orderRepo: orderRepo}
}

// UpdateStatus 更新订单状态
// 只校验token合法性,不做状态机限制(允许管理员人工纠错回退状态)
func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, orderID uint, statusToken string) (*OrderView, error) {
	status, err := order.ParseStatus(statusToken)
	if err != nil {
		return nil, err
	}

	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := o.SetStatus(status); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	return NewOrderView(o), nil
}

// UpdatePaymentStatus 更新支付状态
// 支付成功时若订单仍是pending会被自动推进到processing(实体行为)
func (uc *UpdateStatusUseCase) UpdatePaymentStatus(ctx context.Context, orderID uint, paymentToken string) (*OrderView, error) {
	paymentStatus, err := order.ParsePaymentStatus(paymentToken)
	if err != nil {
		return nil, err
	}

	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	o.SetPaymentStatus(paymentStatus)

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	return NewOrderView(o), nil
}
