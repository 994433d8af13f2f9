package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. ISBN作为业务唯一标识(数据库层保证唯一性)
// 3. Stock是唯一的库存事实来源:只会被下单扣减、取消订单回补、管理员补货修改
// 4. CategoryIDs是跨聚合的弱引用,只保存ID
type Book struct {
	ID          uint
	ISBN        string // ISBN号(国际标准书号)
	Title       string // 书名
	Author      string // 作者
	Publisher   string // 出版社
	Price       int64  // 价格(单位:分,1元=100分)
	Stock       int    // 库存数量
	CoverURL    string // 封面图片URL
	Description string // 图书描述
	CategoryIDs []uint // 所属分类
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(isbn, title, author, publisher string, price int64, stock int, coverURL, description string, categoryIDs []uint) *Book {
	now := time.Now()
	return &Book{
		ISBN:        isbn,
		Title:       title,
		Author:      author,
		Publisher:   publisher,
		Price:       price,
		Stock:       stock,
		CoverURL:    coverURL,
		Description: description,
		CategoryIDs: categoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePrice 更新价格(领域行为)
// 业务规则:价格必须>0。历史订单不受影响(OrderItem保存价格快照)
func (b *Book) UpdatePrice(newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// DecrStock 扣减库存(用于订单创建)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrInsufficientStock
	}
	b.Stock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// IncrStock 增加库存(用于订单取消回补、管理员补货)
func (b *Book) IncrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.Stock += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// HasStock 库存是否满足购买数量
func (b *Book) HasStock(quantity int) bool {
	return b.Stock >= quantity
}

// UpdateInfo 更新图书基本信息
// 空值表示不修改对应字段
func (b *Book) UpdateInfo(title, author, publisher, coverURL, description string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if publisher != "" {
		b.Publisher = publisher
	}
	if coverURL != "" {
		b.CoverURL = coverURL
	}
	if description != "" {
		b.Description = description
	}
	b.UpdatedAt = time.Now()
}
