package order

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/order"
)

// ListOrdersUseCase 查询当前用户的订单列表
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrdersResult 订单列表结果(含分页信息)
type ListOrdersResult struct {
	Orders   []*OrderView
	Total    int64
	Page     int
	PageSize int
}

// Execute 按创建时间倒序分页查询用户自己的订单
func (uc *ListOrdersUseCase) Execute(ctx context.Context, userID uint, page, pageSize int) (*ListOrdersResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	orders, total, err := uc.orderRepo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &ListOrdersResult{
		Orders:   NewOrderViews(orders),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
