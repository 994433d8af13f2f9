package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 用户模块集成测试
// 覆盖:注册、登录、资料维护、登出后Token失效

func TestUserRegister(t *testing.T) {
	RequireServer(t)

	t.Run("正常注册", func(t *testing.T) {
		email := GenerateTestEmail("register")
		resp := PostJSON(t, BaseURL+"/auth/register", map[string]string{
			"name":     "张三",
			"email":    email,
			"password": "pass1234",
		}, "")

		assert.Equal(t, 0, resp.Code, "注册应该成功")

		var data UserData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.NotZero(t, data.ID)
		assert.Equal(t, email, data.Email)
		assert.Equal(t, "user", data.Role, "新注册用户角色应为user")
	})

	t.Run("重复邮箱注册失败", func(t *testing.T) {
		email := GenerateTestEmail("dup")
		req := map[string]string{
			"name":     "张三",
			"email":    email,
			"password": "pass1234",
		}

		resp := PostJSON(t, BaseURL+"/auth/register", req, "")
		require.Equal(t, 0, resp.Code)

		resp = PostJSON(t, BaseURL+"/auth/register", req, "")
		assert.NotEqual(t, 0, resp.Code, "重复邮箱应该失败")
	})

	t.Run("弱密码注册失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/register", map[string]string{
			"name":     "张三",
			"email":    GenerateTestEmail("weak"),
			"password": "12345678", // 纯数字
		}, "")

		assert.NotEqual(t, 0, resp.Code, "纯数字密码应该被拒绝")
	})
}

func TestUserLogin(t *testing.T) {
	RequireServer(t)

	email := GenerateTestEmail("login")
	password := "pass1234"
	resp := PostJSON(t, BaseURL+"/auth/register", map[string]string{
		"name":     "登录测试",
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, 0, resp.Code)

	t.Run("正常登录", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
			"email":    email,
			"password": password,
		}, "")

		assert.Equal(t, 0, resp.Code)

		var data LoginData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.NotEmpty(t, data.AccessToken)
		assert.NotEmpty(t, data.RefreshToken)
	})

	t.Run("密码错误登录失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
			"email":    email,
			"password": "wrong1234",
		}, "")

		assert.NotEqual(t, 0, resp.Code, "密码错误应该失败")
	})
}

func TestUserProfile(t *testing.T) {
	RequireServer(t)

	_, token := RegisterTestUser(t, "profile")

	t.Run("查询个人资料", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/users/me", token)
		assert.Equal(t, 0, resp.Code)
	})

	t.Run("更新个人资料", func(t *testing.T) {
		resp := PutJSON(t, BaseURL+"/users/me", map[string]string{
			"address": "上海市浦东新区",
			"phone":   "13800138000",
		}, token)
		assert.Equal(t, 0, resp.Code)

		var data struct {
			Address string `json:"address"`
			Phone   string `json:"phone"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "上海市浦东新区", data.Address)
		assert.Equal(t, "13800138000", data.Phone)
	})

	t.Run("未登录访问资料失败", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/users/me", "")
		assert.NotEqual(t, 0, resp.Code)
	})
}

func TestUserLogout(t *testing.T) {
	RequireServer(t)

	_, token := RegisterTestUser(t, "logout")

	resp := PostJSON(t, BaseURL+"/auth/logout", nil, token)
	require.Equal(t, 0, resp.Code, "登出应该成功")

	// 登出后Token进入黑名单,不能再访问受保护接口
	resp = GetJSON(t, BaseURL+"/users/me", token)
	assert.NotEqual(t, 0, resp.Code, "已登出的Token应该被拒绝")
}
