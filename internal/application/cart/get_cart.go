package cart

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
)

// GetCartUseCase 查看购物车
type GetCartUseCase struct {
	cartRepo cart.Repository
	bookRepo book.Repository
}

// NewGetCartUseCase 创建购物车查询用例
func NewGetCartUseCase(cartRepo cart.Repository, bookRepo book.Repository) *GetCartUseCase {
	return &GetCartUseCase{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

// ItemView 购物车条目视图(关联图书现价,非快照)
type ItemView struct {
	ItemID       uint   `json:"item_id"`
	BookID       uint   `json:"book_id"`
	Title        string `json:"title"`
	CoverURL     string `json:"cover_url"`
	Price        int64  `json:"price"` // 图书现价(分)
	PriceYuan    string `json:"price_yuan"`
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"` // 现价×数量(分)
	SubtotalYuan string `json:"subtotal_yuan"`
	Stock        int    `json:"stock"` // 当前库存(前端提示用)
}

// CartView 购物车视图
type CartView struct {
	Items     []ItemView `json:"items"`
	TotalQty  int        `json:"total_quantity"`
	Total     int64      `json:"total"` // 合计(分)
	TotalYuan string     `json:"total_yuan"`
}

// Execute 查看购物车
// 价格取图书现价并实时计算小计与合计;购物车不保存价格
func (uc *GetCartUseCase) Execute(ctx context.Context, userID uint) (*CartView, error) {
	items, err := uc.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]ItemView, 0, len(items))}
	for _, item := range items {
		b, err := uc.bookRepo.FindByID(ctx, item.BookID)
		if err != nil {
			// 图书已下架(软删除):跳过该条目,不让整个购物车不可读
			continue
		}

		subtotal := b.Price * int64(item.Quantity)
		view.Items = append(view.Items, ItemView{
			ItemID:       item.ID,
			BookID:       b.ID,
			Title:        b.Title,
			CoverURL:     b.CoverURL,
			Price:        b.Price,
			PriceYuan:    formatYuan(b.Price),
			Quantity:     item.Quantity,
			Subtotal:     subtotal,
			SubtotalYuan: formatYuan(subtotal),
			Stock:        b.Stock,
		})
		view.TotalQty += item.Quantity
		view.Total += subtotal
	}
	view.TotalYuan = formatYuan(view.Total)

	return view, nil
}

// formatYuan 格式化价格(分→元)
func formatYuan(fen int64) string {
	return fmt.Sprintf("%.2f", float64(fen)/100.0)
}
