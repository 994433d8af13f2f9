package order

import (
	"time"
)

// Status 订单状态
// 设计说明:
// 1. 存储使用int(tinyint列,省空间便于索引),API使用字符串token
// 2. 状态值1-5,cancelled单独为5
type Status int

const (
	StatusPending    Status = 1 // 待处理(已下单未支付)
	StatusProcessing Status = 2 // 处理中(已支付备货中)
	StatusShipped    Status = 3 // 已发货
	StatusDelivered  Status = 4 // 已送达
	StatusCancelled  Status = 5 // 已取消
)

// String API字符串token(同时用于日志输出)
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusShipped:
		return "shipped"
	case StatusDelivered:
		return "delivered"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsValid 是否为枚举内的合法状态
func (s Status) IsValid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

// ParseStatus 解析API传入的状态token
// 非法token返回ErrInvalidStatus
func ParseStatus(s string) (Status, error) {
	switch s {
	case "pending":
		return StatusPending, nil
	case "processing":
		return StatusProcessing, nil
	case "shipped":
		return StatusShipped, nil
	case "delivered":
		return StatusDelivered, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return 0, ErrInvalidStatus
	}
}

// PaymentStatus 支付状态
type PaymentStatus int

const (
	PaymentPending PaymentStatus = 1 // 待支付
	PaymentPaid    PaymentStatus = 2 // 已支付
	PaymentFailed  PaymentStatus = 3 // 支付失败
)

// String API字符串token
func (p PaymentStatus) String() string {
	switch p {
	case PaymentPending:
		return "pending"
	case PaymentPaid:
		return "paid"
	case PaymentFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParsePaymentStatus 解析API传入的支付状态token
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "pending":
		return PaymentPending, nil
	case "paid":
		return PaymentPaid, nil
	case "failed":
		return PaymentFailed, nil
	default:
		return 0, ErrInvalidPaymentStatus
	}
}

// PaymentMethod 支付方式(固定枚举)
type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodPaypal         PaymentMethod = "paypal"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// IsValid 是否为合法支付方式
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodPaypal, PaymentMethodCashOnDelivery:
		return true
	default:
		return false
	}
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,Item是聚合内的子实体,创建后不可变
// 2. TotalAmount是下单时刻的价格快照之和,冗余存储(防商家改价影响历史订单)
// 3. 只能通过结算购物车创建,不存在孤立订单
type Order struct {
	ID              uint
	OrderNo         string        // 订单号(业务主键,全局唯一)
	UserID          uint          // 买家用户ID
	TotalAmount     int64         // 订单总金额(分),快照冗余
	Status          Status        // 订单状态
	PaymentStatus   PaymentStatus // 支付状态
	PaymentMethod   PaymentMethod // 支付方式
	ShippingAddress string        // 收货地址
	Notes           string        // 买家备注
	Items           []Item        // 订单明细
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Item 订单明细项
// Price是下单时的单价快照(分),与图书现价解耦,创建后永不修改
type Item struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Title    string // 下单时的书名快照(便于订单展示,图书下架后仍可读)
	Quantity int
	Price    int64 // 下单时单价(分)
}

// NewOrder 创建新订单(工厂方法)
// 初始状态pending/支付状态pending,totalAmount由调用方按明细计算后传入
func NewOrder(orderNo string, userID uint, items []Item, totalAmount int64, shippingAddress string, paymentMethod PaymentMethod, notes string) *Order {
	now := time.Now()
	return &Order{
		OrderNo:         orderNo,
		UserID:          userID,
		TotalAmount:     totalAmount,
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
		Notes:           notes,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CalculateTotal 按明细实时计算总金额
// 用于校验TotalAmount快照的一致性
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// CanCancel 当前状态是否允许取消
// 只有pending/processing可取消;shipped之后以及已取消的订单不可再取消
func (o *Order) CanCancel() bool {
	return o.Status == StatusPending || o.Status == StatusProcessing
}

// Cancel 取消订单(领域行为)
// 库存回补由应用层在同一事务中完成
func (o *Order) Cancel() error {
	if !o.CanCancel() {
		return ErrInvalidCancellation
	}
	o.Status = StatusCancelled
	o.UpdatedAt = time.Now()
	return nil
}

// SetStatus 管理员设置订单状态
// 注意:有意不做状态机校验,仅检查枚举成员资格——沿用线上行为,
// 管理员可以把delivered改回pending(人工纠错场景)
func (o *Order) SetStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	o.Status = s
	o.UpdatedAt = time.Now()
	return nil
}

// SetPaymentStatus 更新支付状态
// 支付成功且订单仍是pending时,自动推进到processing
func (o *Order) SetPaymentStatus(p PaymentStatus) {
	o.PaymentStatus = p
	if p == PaymentPaid && o.Status == StatusPending {
		o.Status = StatusProcessing
	}
	o.UpdatedAt = time.Now()
}

// IsOwnedBy 订单归属校验,防止用户访问他人订单
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
