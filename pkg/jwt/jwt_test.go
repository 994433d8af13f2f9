package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// TestGenerateAndParse 测试Token生成与解析
func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret-at-least-32-characters", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "buyer@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "bookmall", claims.Issuer)
}

// TestParseToken_WrongSecret 密钥不匹配应判定为无效Token
func TestParseToken_WrongSecret(t *testing.T) {
	m1 := NewManager("secret-one-secret-one-secret-one", time.Hour, time.Hour)
	m2 := NewManager("secret-two-secret-two-secret-two", time.Hour, time.Hour)

	pair, err := m1.GenerateToken(1, "a@b.com", "user")
	require.NoError(t, err)

	_, err = m2.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestParseToken_Expired 过期Token应返回ErrTokenExpired
func TestParseToken_Expired(t *testing.T) {
	m := NewManager("test-secret-at-least-32-characters", -time.Minute, time.Hour)

	pair, err := m.GenerateToken(1, "a@b.com", "user")
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

// TestRefreshAccessToken 刷新后的Token应保留用户身份和角色
func TestRefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret-at-least-32-characters", time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(7, "admin@example.com", "admin")
	require.NoError(t, err)

	newAccess, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}
