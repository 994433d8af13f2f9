package user

import (
	"context"
	"time"

	"github.com/xiebiao/bookmall/internal/infrastructure/persistence/redis"
)

// LogoutUseCase 用户登出用例
// JWT是无状态的,无法主动失效,登出通过Redis黑名单实现
type LogoutUseCase struct {
	sessionStore *redis.SessionStore
	accessExpire time.Duration
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore *redis.SessionStore, accessExpire time.Duration) *LogoutUseCase {
	return &LogoutUseCase{
		sessionStore: sessionStore,
		accessExpire: accessExpire,
	}
}

// Execute 执行登出
// 1. 删除Redis会话
// 2. 将Access Token加入黑名单,TTL取Token剩余寿命的上界(到期自动清理)
func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, accessToken string) error {
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}

	return uc.sessionStore.AddToBlacklist(ctx, accessToken, uc.accessExpire)
}
