package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/jwt"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// context键
const (
	ctxKeyUserID   = "auth_user_id"
	ctxKeyUsername = "auth_username"
)

// Auth 认证中间件
type Auth struct {
	jwtManager *jwt.Manager
}

// NewAuth 创建认证中间件
func NewAuth(jwtManager *jwt.Manager) *Auth {
	return &Auth{jwtManager: jwtManager}
}

// RequireAuth 强制认证
// 校验Authorization: Bearer <token>,验证是无状态的签名+过期检查
// 通过后将用户身份写入gin context供Handler使用
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		claims, err := a.jwtManager.ParseToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyUsername, claims.Username)
		c.Next()
	}
}

// GetUserID 从gin context读取当前用户ID
func GetUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// MustGetUserID 读取当前用户ID(必须在RequireAuth之后调用)
func MustGetUserID(c *gin.Context) uint {
	id, _ := GetUserID(c)
	return id
}

// GetUsername 从gin context读取当前用户名
func GetUsername(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyUsername)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

// MustGetUsername 读取当前用户名(必须在RequireAuth之后调用)
func MustGetUsername(c *gin.Context) string {
	name, _ := GetUsername(c)
	return name
}
