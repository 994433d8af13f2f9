package dto

// 分类相关HTTP DTO

// CreateCategoryRequest 创建分类请求(管理员)
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50" example:"科幻小说"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateCategoryRequest 更新分类请求(管理员)
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"omitempty,min=1,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
}
