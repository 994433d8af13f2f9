package book

import (
	"fmt"

	"github.com/xiebiao/bookmall/internal/domain/book"
)

// BookDetail 图书详情DTO
type BookDetail struct {
	ID          uint   `json:"id"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Price       int64  `json:"price"` // 分
	PriceYuan   string `json:"price_yuan"`
	Stock       int    `json:"stock"`
	CoverURL    string `json:"cover_url"`
	Description string `json:"description"`
	CategoryIDs []uint `json:"category_ids"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NewBookDetail 领域实体 → 详情DTO
func NewBookDetail(b *book.Book) *BookDetail {
	return &BookDetail{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Publisher:   b.Publisher,
		Price:       b.Price,
		PriceYuan:   formatYuan(b.Price),
		Stock:       b.Stock,
		CoverURL:    b.CoverURL,
		Description: b.Description,
		CategoryIDs: b.CategoryIDs,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatYuan 格式化价格(分→元)
func formatYuan(fen int64) string {
	return fmt.Sprintf("%.2f", float64(fen)/100.0)
}
