package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/order"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 设计说明:
// 1. Order和OrderItem是聚合关系,一起保存
// 2. 查询时用Preload预加载明细,避免N+1
// 3. 下单/取消事务通过dbFromContext传递
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单(GORM通过foreignKey自动保存关联的Items)
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填自增ID
	o.ID = model.ID
	for i := range o.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}

	return nil
}

// FindByID 根据ID查找订单(含明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	db := dbFromContext(ctx, r.db)

	err := db.Preload("Items").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	return toOrderEntity(&model), nil
}

// FindByOrderNo 根据订单号查找订单
func (r *orderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	var model OrderModel
	db := dbFromContext(ctx, r.db)
	err := db.Preload("Items").Where("order_no = ?", orderNo).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	return toOrderEntity(&model), nil
}

// Update 更新订单状态字段
// 明细不可变,只更新状态相关列
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	db := dbFromContext(ctx, r.db)

	result := db.Model(&OrderModel{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"status":         int(o.Status),
		"payment_status": int(o.PaymentStatus),
		"updated_at":     o.UpdatedAt,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单失败")
	}

	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// ListByUserID 查询用户的订单列表(按创建时间倒序)
func (r *orderRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var models []OrderModel
	var total int64

	db := dbFromContext(ctx, r.db)
	query := db.Model(&OrderModel{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Items").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}

	return orders, total, nil
}

// List 管理端订单列表(状态/时间范围过滤)
func (r *orderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	var models []OrderModel
	var total int64

	query := dbFromContext(ctx, r.db).Model(&OrderModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", int(*filter.Status))
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单总数失败")
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := query.Preload("Items").
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}

	return orders, total, nil
}

// Stats 订单统计
// 总单数、已支付订单总营收、各状态单数,三条聚合SQL
func (r *orderRepository) Stats(ctx context.Context, since time.Time) (*order.StatsResult, error) {
	db := dbFromContext(ctx, r.db)
	result := &order.StatsResult{
		CountByStatus: make(map[order.Status]int64),
	}

	// 订单总数
	if err := db.Model(&OrderModel{}).
		Where("created_at >= ?", since).
		Count(&result.TotalOrders).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计订单总数失败")
	}

	// 已支付订单总营收(SUM为NULL时COALESCE成0)
	if err := db.Model(&OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("payment_status = ? AND created_at >= ?", int(order.PaymentPaid), since).
		Scan(&result.TotalRevenue).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计营收失败")
	}

	// 各状态订单数
	var rows []struct {
		Status int
		Count  int64
	}
	if err := db.Model(&OrderModel{}).
		Select("status, COUNT(id) AS count").
		Where("created_at >= ?", since).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计订单状态分布失败")
	}
	for _, row := range rows {
		result.CountByStatus[order.Status(row.Status)] = row.Count
	}

	return result, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			ID:       item.ID,
			OrderID:  item.OrderID,
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &OrderModel{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		Status:          int(o.Status),
		PaymentStatus:   int(o.PaymentStatus),
		PaymentMethod:   string(o.PaymentMethod),
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderEntity(model *OrderModel) *order.Order {
	items := make([]order.Item, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.Item{
			ID:       item.ID,
			OrderID:  item.OrderID,
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &order.Order{
		ID:              model.ID,
		OrderNo:         model.OrderNo,
		UserID:          model.UserID,
		TotalAmount:     model.TotalAmount,
		Status:          order.Status(model.Status),
		PaymentStatus:   order.PaymentStatus(model.PaymentStatus),
		PaymentMethod:   order.PaymentMethod(model.PaymentMethod),
		ShippingAddress: model.ShippingAddress,
		Notes:           model.Notes,
		Items:           items,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
