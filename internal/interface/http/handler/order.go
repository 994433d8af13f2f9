package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookmall/internal/application/order"
	"github.com/xiebiao/bookmall/internal/domain/order"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createUseCase       *apporder.CreateOrderUseCase
	getUseCase          *apporder.GetOrderUseCase
	listUseCase         *apporder.ListOrdersUseCase
	cancelUseCase       *apporder.CancelOrderUseCase
	adminUseCase        *apporder.AdminOrderUseCase
	updateStatusUseCase *apporder.UpdateStatusUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createUseCase *apporder.CreateOrderUseCase,
	getUseCase *apporder.GetOrderUseCase,
	listUseCase *apporder.ListOrdersUseCase,
	cancelUseCase *apporder.CancelOrderUseCase,
	adminUseCase *apporder.AdminOrderUseCase,
	updateStatusUseCase *apporder.UpdateStatusUseCase,
) *OrderHandler {
	return &OrderHandler{
		createUseCase:       createUseCase,
		getUseCase:          getUseCase,
		listUseCase:         listUseCase,
		cancelUseCase:       cancelUseCase,
		adminUseCase:        adminUseCase,
		updateStatusUseCase: updateStatusUseCase,
	}
}

// Create 结算购物车创建订单
// @Summary      创建订单
// @Description  结算当前购物车:锁定库存、按现价生成快照、扣减库存、清空购物车,全程单事务
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "收货信息"
// @Success      201 {object} response.Response "下单成功"
// @Failure      400 {object} response.Response "购物车为空/库存不足"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   order.PaymentMethod(req.PaymentMethod),
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// List 我的订单列表
// @Summary      我的订单列表
// @Description  按创建时间倒序分页
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(10)
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var query dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), userID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Orders, result.Total, result.Page, result.PageSize)
}

// Get 订单详情
// @Summary      订单详情
// @Description  普通用户只能查看自己的订单,管理员可查看任意订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response "查询成功"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	role := middleware.GetRole(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), userID, role, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Cancel 取消订单
// @Summary      取消订单
// @Description  只有pending/processing状态可取消,取消时回补库存
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response "取消成功"
// @Failure      400 {object} response.Response "当前状态不允许取消"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id}/cancel [put]
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.cancelUseCase.Execute(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AdminList 管理端订单列表
// @Summary      全部订单列表
// @Description  可按订单号精确查询,或按状态、创建日期范围过滤
// @Tags         订单管理
// @Produce      json
// @Security     BearerAuth
// @Param        order_no query string false "订单号(精确查询)"
// @Param        status query string false "订单状态" Enums(pending, processing, shipped, delivered, cancelled)
// @Param        start_date query string false "开始日期(YYYY-MM-DD)"
// @Param        end_date query string false "结束日期(YYYY-MM-DD)"
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(10)
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/admin/orders [get]
func (h *OrderHandler) AdminList(c *gin.Context) {
	var query dto.AdminListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.adminUseCase.List(c.Request.Context(), apporder.AdminListRequest{
		OrderNo:   query.OrderNo,
		Status:    query.Status,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Orders, result.Total, result.Page, result.PageSize)
}

// Stats 订单统计
// @Summary      订单统计
// @Description  统计周期内订单总数、已支付总金额、各状态单数
// @Tags         订单管理
// @Produce      json
// @Security     BearerAuth
// @Param        period query string false "统计周期" Enums(day, week, month, year) default(month)
// @Success      200 {object} response.Response "统计成功"
// @Router       /api/v1/admin/orders/stats [get]
func (h *OrderHandler) Stats(c *gin.Context) {
	var query dto.OrderStatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.adminUseCase.Stats(c.Request.Context(), query.Period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateStatus 更新订单状态(管理员)
// @Summary      更新订单状态
// @Description  只校验状态token合法性,允许任意状态间切换(人工纠错)
// @Tags         订单管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} response.Response "更新成功"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateStatusUseCase.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdatePaymentStatus 更新支付状态(管理员)
// @Summary      更新支付状态
// @Description  支付成功且订单为pending时自动推进到processing
// @Tags         订单管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdatePaymentStatusRequest true "支付状态"
// @Success      200 {object} response.Response "更新成功"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/admin/orders/{id}/payment [put]
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateStatusUseCase.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
