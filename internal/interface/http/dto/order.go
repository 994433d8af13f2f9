package dto

// 订单相关HTTP DTO

// CreateOrderRequest 下单请求(结算当前购物车)
// 金额在服务端按锁定时刻的现价计算,客户端不传价格
type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required,max=500" example:"北京市海淀区中关村大街1号"`
	PaymentMethod   string `json:"payment_method" binding:"required,oneof=credit_card paypal cash_on_delivery" example:"credit_card"`
	Notes           string `json:"notes" binding:"omitempty,max=500"`
}

// UpdateOrderStatusRequest 更新订单状态请求(管理员)
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled" example:"shipped"`
}

// UpdatePaymentStatusRequest 更新支付状态请求(管理员)
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pending paid failed" example:"paid"`
}

// ListOrdersQuery 用户订单列表查询参数
type ListOrdersQuery struct {
	Page     int `form:"page,default=1" binding:"omitempty,gte=1"`
	PageSize int `form:"page_size,default=10" binding:"omitempty,gte=1,lte=100"`
}

// AdminListOrdersQuery 管理端订单列表查询参数
type AdminListOrdersQuery struct {
	OrderNo   string `form:"order_no" binding:"omitempty,max=64"`
	Status    string `form:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Page      int    `form:"page,default=1" binding:"omitempty,gte=1"`
	PageSize  int    `form:"page_size,default=10" binding:"omitempty,gte=1,lte=100"`
}

// OrderStatsQuery 订单统计查询参数
type OrderStatsQuery struct {
	Period string `form:"period,default=month" binding:"omitempty,oneof=day week month year"`
}
