package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/bookmall/internal/application/category"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/response"
)

// CategoryHandler 分类HTTP处理器
// 查询公开,写操作需要管理员权限
type CategoryHandler struct {
	manageUseCase *appcategory.ManageCategoryUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(manageUseCase *appcategory.ManageCategoryUseCase) *CategoryHandler {
	return &CategoryHandler{manageUseCase: manageUseCase}
}

// List 分类列表
// @Summary      分类列表
// @Description  返回全部分类,不分页
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	result, err := h.manageUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response "查询成功"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.manageUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Create 创建分类(管理员)
// @Summary      创建分类
// @Description  slug由名称自动生成
// @Tags         分类管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      201 {object} response.Response "创建成功"
// @Failure      400 {object} response.Response "名称重复"
// @Router       /api/v1/admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUseCase.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Update 更新分类(管理员)
// @Summary      更新分类
// @Tags         分类管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.UpdateCategoryRequest true "分类信息"
// @Success      200 {object} response.Response "更新成功"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUseCase.Update(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除分类(管理员)
// @Summary      删除分类
// @Description  只删除分类与关联关系,分类下的图书保留
// @Tags         分类管理
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.manageUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
