package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookmall/internal/domain/user"
	"github.com/xiebiao/bookmall/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/jwt"
	"github.com/xiebiao/bookmall/pkg/response"
)

// AuthMiddleware JWT认证中间件
// 设计说明:
// 1. 从Authorization: Bearer <token>提取并验证Token
// 2. 检查Redis黑名单(已登出的Token不可继续使用)
// 3. 将用户ID与角色注入Context,管理接口鉴权不回查数据库
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 要求登录
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		// 黑名单检查:登出或被强制失效的Token拒绝访问
		isBlacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, apperrors.Wrap(err, "验证Token失败"))
			c.Abort()
			return
		}
		if isBlacklisted {
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err) // ErrTokenExpired / ErrInvalidToken
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("access_token", tokenString)

		c.Next()
	}
}

// RequireAdmin 要求管理员角色
// 必须挂在RequireAuth之后;角色来自JWT Claims
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != user.RoleAdmin {
			response.Error(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractToken 从Authorization头提取Bearer Token
func extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}

// GetUserID 从Context获取当前登录用户ID(未登录返回0)
func GetUserID(c *gin.Context) uint {
	if userID, exists := c.Get("user_id"); exists {
		if uid, ok := userID.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetRole 从Context获取当前用户角色
func GetRole(c *gin.Context) user.Role {
	if role, exists := c.Get("role"); exists {
		if r, ok := role.(string); ok {
			return user.Role(r)
		}
	}
	return user.RoleUser
}

// GetAccessToken 从Context获取当前请求的Access Token(登出时用)
func GetAccessToken(c *gin.Context) string {
	if token, exists := c.Get("access_token"); exists {
		if t, ok := token.(string); ok {
			return t
		}
	}
	return ""
}

// MustGetUserID 获取用户ID,仅用于已通过RequireAuth的Handler
func MustGetUserID(c *gin.Context) uint {
	userID := GetUserID(c)
	if userID == 0 {
		panic("user_id not found in context")
	}
	return userID
}
