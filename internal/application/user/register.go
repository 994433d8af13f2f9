package user

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/user"
)

// RegisterUseCase 用户注册用例
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// RegisterRequest 注册请求DTO
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// Execute 执行注册
// 格式校验、密码强度、bcrypt加密由领域服务完成;
// 邮箱唯一性最终由数据库UNIQUE索引兜底
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	u, err := uc.userService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return NewUserInfo(u), nil
}

// UserInfo 用户信息DTO(不含密码哈希)
type UserInfo struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at"`
}

// NewUserInfo 领域实体 → 用户信息DTO
func NewUserInfo(u *user.User) *UserInfo {
	return &UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Address:   u.Address,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
