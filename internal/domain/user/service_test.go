package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// fakeRepo 内存版用户仓储（测试用）
type fakeRepo struct {
	byEmail map[string]*User
	nextID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: make(map[string]*User), nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, u *User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeRepo) Update(_ context.Context, u *User) error { return nil }
func (r *fakeRepo) Delete(_ context.Context, id uint) error { return nil }

// TestRegister 注册：密码加密存储，重复邮箱被拒绝
func TestRegister(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		u, err := svc.Register(ctx, "张三", "zhangsan@example.com", "passw0rd123")
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.Equal(t, RoleUser, u.Role)
		// 存储的必须是哈希而不是明文
		assert.NotEqual(t, "passw0rd123", u.Password)
		assert.NoError(t, svc.ValidatePassword(u.Password, "passw0rd123"))
	})

	t.Run("重复邮箱", func(t *testing.T) {
		_, err := svc.Register(ctx, "李四", "zhangsan@example.com", "passw0rd123")
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})

	t.Run("邮箱格式错误", func(t *testing.T) {
		_, err := svc.Register(ctx, "王五", "not-an-email", "passw0rd123")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("弱密码", func(t *testing.T) {
		cases := []string{"short1", "allletters", "12345678", "waytoolongpassword12345"}
		for _, pwd := range cases {
			_, err := svc.Register(ctx, "测试", "weak@example.com", pwd)
			assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "密码 %q 应被判定为弱密码", pwd)
		}
	})
}

// TestLogin 登录：密码错误与用户不存在
func TestLogin(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "张三", "zhangsan@example.com", "passw0rd123")
	require.NoError(t, err)

	t.Run("正常登录", func(t *testing.T) {
		u, err := svc.Login(ctx, "zhangsan@example.com", "passw0rd123")
		require.NoError(t, err)
		assert.Equal(t, "zhangsan@example.com", u.Email)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := svc.Login(ctx, "zhangsan@example.com", "wrongpass1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "passw0rd123")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
