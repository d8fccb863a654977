package user

import (
	"time"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. Username与Email都是业务唯一标识（数据库层保证唯一性）
// 2. 密码已加密存储（bcrypt），不暴露明文
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时处理映射）
// 4. 本系统中用户注册后不可删除
type User struct {
	ID        uint
	Username  string
	Email     string
	Password  string // bcrypt哈希值
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(username, email, hashedPassword string) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
