package user

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/user"
)

// ProfileUseCase 个人资料用例(查询与更新)
type ProfileUseCase struct {
	userService user.Service
}

// NewProfileUseCase 创建个人资料用例
func NewProfileUseCase(userService user.Service) *ProfileUseCase {
	return &ProfileUseCase{
		userService: userService,
	}
}

// Get 查询当前用户的个人资料
func (uc *ProfileUseCase) Get(ctx context.Context, userID uint) (*UserInfo, error) {
	u, err := uc.userService.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewUserInfo(u), nil
}

// UpdateProfileRequest 更新资料请求DTO
// 空字符串表示不修改对应字段;邮箱与角色不可通过此接口修改
type UpdateProfileRequest struct {
	Name    string
	Address string
	Phone   string
}

// Update 更新当前用户的个人资料
func (uc *ProfileUseCase) Update(ctx context.Context, userID uint, req UpdateProfileRequest) (*UserInfo, error) {
	u, err := uc.userService.UpdateProfile(ctx, userID, req.Name, req.Address, req.Phone)
	if err != nil {
		return nil, err
	}
	return NewUserInfo(u), nil
}
