package dto

// 用户相关HTTP DTO
// 设计说明:
// 1. binding tag做基础格式校验,业务规则校验(密码强度等)在领域层
// 2. HTTP层DTO与应用层DTO分离,接口变更不影响用例

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"张三"`
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"pass1234"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required" example:"pass1234"`
}

// RefreshTokenRequest 刷新Token请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest 更新个人资料请求
// 所有字段可选,省略表示不修改
type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"omitempty,min=2,max=100"`
	Address string `json:"address" binding:"omitempty,max=255"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
}
