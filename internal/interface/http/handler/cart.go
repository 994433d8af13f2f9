package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookmall/internal/application/cart"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 全部接口要求登录,操作范围限定为当前用户自己的购物车
type CartHandler struct {
	addUseCase    *appcart.AddToCartUseCase
	getUseCase    *appcart.GetCartUseCase
	manageUseCase *appcart.ManageCartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addUseCase *appcart.AddToCartUseCase,
	getUseCase *appcart.GetCartUseCase,
	manageUseCase *appcart.ManageCartUseCase,
) *CartHandler {
	return &CartHandler{
		addUseCase:    addUseCase,
		getUseCase:    getUseCase,
		manageUseCase: manageUseCase,
	}
}

// Get 查看购物车
// @Summary      查看购物车
// @Description  按图书现价实时计算小计与合计
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.getUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Add 加入购物车
// @Summary      加入购物车
// @Description  重复加购同一本书只累加数量;库存检查为提示性,权威判定在结算时
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddToCartRequest true "图书与数量"
// @Success      201 {object} response.Response "加购成功"
// @Failure      400 {object} response.Response "库存不足"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) Add(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	item, err := h.addUseCase.Execute(c.Request.Context(), userID, req.BookID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"item_id":  item.ID,
		"book_id":  item.BookID,
		"quantity": item.Quantity,
	})
}

// UpdateItem 修改条目数量
// @Summary      修改购物车条目数量
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "条目ID"
// @Param        request body dto.UpdateCartItemRequest true "数量"
// @Success      200 {object} response.Response "修改成功"
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	item, err := h.manageUseCase.UpdateQuantity(c.Request.Context(), userID, id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"item_id":  item.ID,
		"book_id":  item.BookID,
		"quantity": item.Quantity,
	})
}

// RemoveItem 移除条目
// @Summary      移除购物车条目
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "条目ID"
// @Success      200 {object} response.Response "移除成功"
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.manageUseCase.RemoveItem(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Clear 清空购物车
// @Summary      清空购物车
// @Description  幂等操作,空购物车清空也返回成功
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "清空成功"
// @Router       /api/v1/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	if err := h.manageUseCase.Clear(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
