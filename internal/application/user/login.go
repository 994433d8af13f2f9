package user

import (
	"context"
	"time"

	"github.com/xiebiao/bookmall/internal/domain/user"
	"github.com/xiebiao/bookmall/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookmall/pkg/jwt"
)

// LoginUseCase 用户登录用例
// 设计说明:
// 1. 验证邮箱密码
// 2. 生成JWT Token对(Role写入Claims)
// 3. 保存会话到Redis,有效期与Refresh Token一致
type LoginUseCase struct {
	userService   user.Service
	jwtManager    *jwt.Manager
	sessionStore  *redis.SessionStore
	refreshExpire time.Duration
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
	refreshExpire time.Duration,
) *LoginUseCase {
	return &LoginUseCase{
		userService:   userService,
		jwtManager:    jwtManager,
		sessionStore:  sessionStore,
		refreshExpire: refreshExpire,
	}
}

// LoginRequest 登录请求DTO
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse 登录响应DTO
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"` // Access Token过期时间(秒)
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// 1. 验证邮箱密码(领域服务)
	u, err := uc.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 生成JWT Token对
	tokenPair, err := uc.jwtManager.GenerateToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}

	// 3. 保存会话到Redis(会话有效期=Refresh Token有效期)
	// 会话保存失败不阻断登录:Redis故障时降级为无会话记录的纯JWT鉴权
	sessionData := map[string]interface{}{
		"user_id":  u.ID,
		"email":    u.Email,
		"role":     string(u.Role),
		"login_at": time.Now().Unix(),
	}
	_ = uc.sessionStore.SaveSession(ctx, u.ID, sessionData, uc.refreshExpire)

	return &LoginResponse{
		User:         *NewUserInfo(u),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// RefreshTokenUseCase 刷新Access Token
type RefreshTokenUseCase struct {
	jwtManager *jwt.Manager
}

// NewRefreshTokenUseCase 创建Token刷新用例
func NewRefreshTokenUseCase(jwtManager *jwt.Manager) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{jwtManager: jwtManager}
}

// RefreshTokenResponse 刷新响应DTO
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // 新Access Token过期时间(秒)
}

// Execute 用Refresh Token换取新的Access Token
// Refresh Token本身不轮换,到期后需重新登录
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*RefreshTokenResponse, error) {
	accessToken, err := uc.jwtManager.RefreshAccessToken(refreshToken)
	if err != nil {
		return nil, err
	}

	return &RefreshTokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   uc.jwtManager.AccessTokenExpireSeconds(),
	}, nil
}
