package order

import (
	"context"
	"time"
)

// Repository 订单仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. Create/Update会在下单、取消事务中调用,实现必须支持事务上下文
type Repository interface {
	// Create 创建订单(订单头与明细在同一事务中落库)
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(含明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单(含明细)
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// Update 更新订单状态字段(不更新明细,明细不可变)
	Update(ctx context.Context, order *Order) error

	// ListByUserID 查询用户的订单列表(按创建时间倒序,分页)
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)

	// List 管理端查询全部订单(可按状态、创建时间范围过滤,分页)
	List(ctx context.Context, filter ListFilter) ([]*Order, int64, error)

	// Stats 订单统计(总单数、已支付订单总金额、各状态单数)
	Stats(ctx context.Context, since time.Time) (*StatsResult, error)
}

// ListFilter 管理端订单列表过滤条件
type ListFilter struct {
	Status    *Status    // nil表示不过滤
	StartDate *time.Time // 创建时间下界(含)
	EndDate   *time.Time // 创建时间上界(含)
	Page      int
	PageSize  int
}

// StatsResult 订单统计结果
type StatsResult struct {
	TotalOrders   int64            // 时间段内订单总数
	TotalRevenue  int64            // 已支付订单总金额(分)
	CountByStatus map[Status]int64 // 各状态订单数
}
