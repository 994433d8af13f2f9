package user

import (
	"time"
)

// Role 用户角色
type Role string

const (
	RoleUser  Role = "user"  // 普通用户
	RoleAdmin Role = "admin" // 管理员（商品管理、订单管理）
)

// IsValid 检查角色是否合法
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User 用户实体（聚合根）
// DDD设计说明：
// 1. User是用户聚合的根实体
// 2. 密码只存bcrypt哈希，实体不暴露明文相关方法
// 3. 领域实体不依赖GORM tag（infrastructure层的模型负责映射）
type User struct {
	ID        uint
	Name      string
	Email     string
	Password  string // bcrypt哈希值
	Role      Role
	Address   string // 默认收货地址
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码，角色默认为普通用户
func NewUser(name, email, hashedPassword string) *User {
	now := time.Now()
	return &User{
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpdateProfile 更新个人资料（领域行为）
// 空字符串表示不修改对应字段
func (u *User) UpdateProfile(name, address, phone string) {
	if name != "" {
		u.Name = name
	}
	if address != "" {
		u.Address = address
	}
	if phone != "" {
		u.Phone = phone
	}
	u.UpdatedAt = time.Now()
}
