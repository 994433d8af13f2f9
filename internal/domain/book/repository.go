package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. LockByID/UpdateStock是下单流程的库存一致性基础,必须支持事务
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息(不含库存,库存走UpdateStock)
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// LockByID 悲观锁查询图书(SELECT ... FOR UPDATE)
	// 下单事务中锁定库存行,防止并发超卖;必须在事务上下文中调用
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 更新库存(原子操作)
	// delta为正数表示增加,负数表示减少
	// 内部带 stock + delta >= 0 守卫,不足时返回ErrInsufficientStock
	UpdateStock(ctx context.Context, id uint, delta int) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page       int    // 页码(从1开始)
	PageSize   int    // 每页数量
	Keyword    string // 搜索关键词(标题、作者、出版社)
	CategoryID uint   // 按分类过滤(0表示不过滤)
	MinPrice   int64  // 最低价格(分,0表示不限)
	MaxPrice   int64  // 最高价格(分,0表示不限)
	SortBy     string // 排序字段(price_asc, price_desc, created_at_desc)
}
