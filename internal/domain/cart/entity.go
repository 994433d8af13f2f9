package cart

import (
	"time"
)

// Item 购物车条目
// 设计说明:
// 1. (UserID, BookID)业务唯一:同一本书重复加购只增加数量
// 2. 购物车不保存价格:价格以结算时刻的图书现价为准(无价格锁定/库存预留语义)
// 3. 结算成功后整个用户的购物车与订单创建在同一事务中清空
type Item struct {
	ID        uint
	UserID    uint
	BookID    uint
	Quantity  int // 必须>0
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem 创建购物车条目(工厂方法)
func NewItem(userID, bookID uint, quantity int) *Item {
	now := time.Now()
	return &Item{
		UserID:    userID,
		BookID:    bookID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddQuantity 重复加购时累加数量
func (i *Item) AddQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.Quantity += quantity
	i.UpdatedAt = time.Now()
	return nil
}

// SetQuantity 直接设置数量(购物车内修改)
func (i *Item) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.Quantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy 归属校验,防止操作他人购物车
func (i *Item) IsOwnedBy(userID uint) bool {
	return i.UserID == userID
}
