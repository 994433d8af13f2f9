package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookmall/internal/application/book"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/response"
)

// BookHandler 图书HTTP处理器
// 列表和详情是公开接口;上架/更新/补货/下架需要管理员权限(路由层中间件控制)
type BookHandler struct {
	publishUseCase *appbook.PublishBookUseCase
	listUseCase    *appbook.ListBooksUseCase
	manageUseCase  *appbook.ManageBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	publishUseCase *appbook.PublishBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
	manageUseCase *appbook.ManageBookUseCase,
) *BookHandler {
	return &BookHandler{
		publishUseCase: publishUseCase,
		listUseCase:    listUseCase,
		manageUseCase:  manageUseCase,
	}
}

// List 图书列表
// @Summary      图书列表
// @Description  分页查询图书,支持关键词搜索、分类过滤、价格区间、排序
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        keyword query string false "搜索关键词(标题/作者/出版社)"
// @Param        category_id query int false "分类ID"
// @Param        min_price query int false "最低价格(分)"
// @Param        max_price query int false "最高价格(分)"
// @Param        sort_by query string false "排序" Enums(price_asc, price_desc, created_at_desc)
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:       query.Page,
		PageSize:   query.PageSize,
		Keyword:    query.Keyword,
		CategoryID: query.CategoryID,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		SortBy:     query.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response "查询成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.manageUseCase.GetBook(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Publish 上架图书(管理员)
// @Summary      上架图书
// @Tags         图书管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PublishBookRequest true "图书信息"
// @Success      201 {object} response.Response "上架成功"
// @Failure      400 {object} response.Response "参数错误/ISBN重复"
// @Router       /api/v1/admin/books [post]
func (h *BookHandler) Publish(c *gin.Context) {
	var req dto.PublishBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.publishUseCase.Execute(c.Request.Context(), appbook.PublishBookRequest{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		Publisher:   req.Publisher,
		Price:       req.Price,
		Stock:       req.Stock,
		CoverURL:    req.CoverURL,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Update 更新图书(管理员)
// @Summary      更新图书
// @Description  省略/零值的字段不修改;历史订单不受改价影响
// @Tags         图书管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      200 {object} response.Response "更新成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/admin/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUseCase.UpdateBook(c.Request.Context(), id, appbook.UpdateBookRequest{
		Title:       req.Title,
		Author:      req.Author,
		Publisher:   req.Publisher,
		CoverURL:    req.CoverURL,
		Description: req.Description,
		Price:       req.Price,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Restock 补货/盘减(管理员)
// @Summary      调整库存
// @Description  delta为正表示补货,为负表示盘减,结果不能为负库存
// @Tags         图书管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.RestockBookRequest true "库存增量"
// @Success      200 {object} response.Response "调整成功"
// @Failure      400 {object} response.Response "库存不足以盘减"
// @Router       /api/v1/admin/books/{id}/stock [patch]
func (h *BookHandler) Restock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.RestockBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUseCase.RestockBook(c.Request.Context(), id, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 下架图书(管理员)
// @Summary      下架图书
// @Description  软删除,历史订单保留标题与价格快照
// @Tags         图书管理
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response "下架成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/admin/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.manageUseCase.DeleteBook(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// parseIDParam 解析路径中的id参数,失败时直接写错误响应
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "ID参数不合法")
		return 0, false
	}
	return uint(id), true
}
