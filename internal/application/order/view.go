package order

import (
	"fmt"

	"github.com/xiebiao/bookmall/internal/domain/order"
)

// OrderView 订单视图DTO(应用层向接口层输出的统一形态)
type OrderView struct {
	OrderID         uint            `json:"order_id"`
	OrderNo         string          `json:"order_no"`
	UserID          uint            `json:"user_id"`
	TotalAmount     int64           `json:"total_amount"`      // 分
	TotalAmountYuan string          `json:"total_amount_yuan"` // 元(展示用)
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress string          `json:"shipping_address"`
	Notes           string          `json:"notes,omitempty"`
	Items           []OrderItemView `json:"items"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// OrderItemView 订单明细视图
type OrderItemView struct {
	BookID    uint   `json:"book_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`      // 下单时单价(分)
	PriceYuan string `json:"price_yuan"` // 元(展示用)
	Subtotal  int64  `json:"subtotal"`   // 分
}

// NewOrderView 领域实体 → 视图DTO
func NewOrderView(o *order.Order) *OrderView {
	items := make([]OrderItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemView{
			BookID:    item.BookID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			Price:     item.Price,
			PriceYuan: FormatYuan(item.Price),
			Subtotal:  item.Price * int64(item.Quantity),
		}
	}

	return &OrderView{
		OrderID:         o.ID,
		OrderNo:         o.OrderNo,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		TotalAmountYuan: FormatYuan(o.TotalAmount),
		Status:          o.Status.String(),
		PaymentStatus:   o.PaymentStatus.String(),
		PaymentMethod:   string(o.PaymentMethod),
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		Items:           items,
		CreatedAt:       o.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       o.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// NewOrderViews 批量转换
func NewOrderViews(orders []*order.Order) []*OrderView {
	views := make([]*OrderView, len(orders))
	for i, o := range orders {
		views[i] = NewOrderView(o)
	}
	return views
}

// FormatYuan 格式化价格(分→元)
func FormatYuan(fen int64) string {
	return fmt.Sprintf("%.2f", float64(fen)/100.0)
}
