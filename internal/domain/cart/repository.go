package cart

import (
	"context"
)

// Repository 购物车仓储接口
// 设计说明:
// 1. ListByUserID/ClearByUserID会在下单事务中调用,实现必须支持事务上下文
// 2. (UserID, BookID)唯一性由数据库复合唯一索引兜底
type Repository interface {
	// Create 新增条目
	Create(ctx context.Context, item *Item) error

	// FindByID 根据条目ID查找
	FindByID(ctx context.Context, id uint) (*Item, error)

	// FindByUserAndBook 查找用户对某本书的条目
	// 不存在时返回ErrItemNotFound
	FindByUserAndBook(ctx context.Context, userID, bookID uint) (*Item, error)

	// ListByUserID 查询用户的全部购物车条目
	ListByUserID(ctx context.Context, userID uint) ([]*Item, error)

	// Update 更新条目数量
	Update(ctx context.Context, item *Item) error

	// Delete 删除条目
	Delete(ctx context.Context, id uint) error

	// ClearByUserID 清空用户购物车(结算成功或主动清空)
	ClearByUserID(ctx context.Context, userID uint) error
}
