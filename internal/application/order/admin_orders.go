package order

import (
	"context"
	"time"

	"github.com/xiebiao/bookmall/internal/domain/order"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// AdminOrderUseCase 管理端订单查询与统计
type AdminOrderUseCase struct {
	orderRepo order.Repository
}

// NewAdminOrderUseCase 创建管理端订单用例
func NewAdminOrderUseCase(orderRepo order.Repository) *AdminOrderUseCase {
	return &AdminOrderUseCase{orderRepo: orderRepo}
}

// AdminListRequest 管理端订单列表请求
type AdminListRequest struct {
	OrderNo   string // 订单号精确查询,非空时忽略其他过滤条件
	Status    string // 状态token,空表示不过滤
	StartDate string // 创建时间下界,格式2006-01-02
	EndDate   string // 创建时间上界,格式2006-01-02
	Page      int
	PageSize  int
}

// List 管理端分页查询全部订单,可按状态和创建时间范围过滤
// 指定订单号时走精确查询,命中则返回单条结果
func (uc *AdminOrderUseCase) List(ctx context.Context, req AdminListRequest) (*ListOrdersResult, error) {
	if req.OrderNo != "" {
		o, err := uc.orderRepo.FindByOrderNo(ctx, req.OrderNo)
		if err != nil {
			return nil, err
		}
		return &ListOrdersResult{
			Orders:   NewOrderViews([]*order.Order{o}),
			Total:    1,
			Page:     1,
			PageSize: 1,
		}, nil
	}

	filter := order.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 10
	}

	if req.Status != "" {
		status, err := order.ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	if req.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "开始日期格式错误,应为YYYY-MM-DD")
		}
		filter.StartDate = &t
	}

	if req.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "结束日期格式错误,应为YYYY-MM-DD")
		}
		// 上界取当天末尾,保证"含当天"语义
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}

	orders, total, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListOrdersResult{
		Orders:   NewOrderViews(orders),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// StatsView 订单统计视图
type StatsView struct {
	Period           string           `json:"period"`             // 统计周期
	TotalOrders      int64            `json:"total_orders"`       // 周期内订单总数
	TotalRevenue     int64            `json:"total_revenue"`      // 已支付订单总金额(分)
	TotalRevenueYuan string           `json:"total_revenue_yuan"` // 元(展示用)
	CountByStatus    map[string]int64 `json:"count_by_status"`    // 各状态订单数
}

// Stats 订单统计
// period取值day/week/month/year,默认month
func (uc *AdminOrderUseCase) Stats(ctx context.Context, period string) (*StatsView, error) {
	if period == "" {
		period = "month"
	}

	now := time.Now()
	var since time.Time
	switch period {
	case "day":
		since = now.AddDate(0, 0, -1)
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, -1, 0)
	case "year":
		since = now.AddDate(-1, 0, 0)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "统计周期只支持day/week/month/year")
	}

	result, err := uc.orderRepo.Stats(ctx, since)
	if err != nil {
		return nil, err
	}

	countByStatus := make(map[string]int64, len(result.CountByStatus))
	for status, count := range result.CountByStatus {
		countByStatus[status.String()] = count
	}

	return &StatsView{
		Period:           period,
		TotalOrders:      result.TotalOrders,
		TotalRevenue:     result.TotalRevenue,
		TotalRevenueYuan: FormatYuan(result.TotalRevenue),
		CountByStatus:    countByStatus,
	}, nil
}
