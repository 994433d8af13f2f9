package order

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在(或不属于当前用户)
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrInvalidStatus 非法的订单状态值
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "非法的订单状态")

	// ErrInvalidPaymentStatus 非法的支付状态值
	ErrInvalidPaymentStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "非法的支付状态")

	// ErrInvalidPaymentMethod 非法的支付方式
	ErrInvalidPaymentMethod = apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的支付方式")

	// ErrEmptyShippingAddress 收货地址为空
	ErrEmptyShippingAddress = apperrors.New(apperrors.ErrCodeInvalidParams, "收货地址不能为空")

	// ErrInvalidCancellation 当前状态不允许取消
	ErrInvalidCancellation = apperrors.New(apperrors.ErrCodeInvalidCancellation, "当前状态的订单不能取消")

	// ErrOrderNoGenerate 订单号生成失败
	ErrOrderNoGenerate = apperrors.New(apperrors.ErrCodeInternal, "订单号生成失败")
)

// NewInsufficientStockError 库存不足错误(携带书名与数量上下文)
// 结算失败时告诉买家具体是哪本书不够
func NewInsufficientStockError(title string, stock, want int) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
		"图书《%s》库存不足,当前库存:%d,需要:%d", title, stock, want)
}
