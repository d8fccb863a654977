package user

import (
	"context"
	"time"

	"github.com/xiebiao/bookstore-admin/internal/domain/user"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-admin/pkg/jwt"
	"github.com/xiebiao/bookstore-admin/pkg/logger"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Account   string // 用户名或邮箱
	Password  string
	ClientIP  string
	UserAgent string
}

// LoginUseCase 用户登录用例
type LoginUseCase struct {
	userService user.Service
	jwtManager  *jwt.Manager
	sessions    *redis.SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(userService user.Service, jwtManager *jwt.Manager, sessions *redis.SessionStore) *LoginUseCase {
	return &LoginUseCase{
		userService: userService,
		jwtManager:  jwtManager,
		sessions:    sessions,
	}
}

// Execute 执行登录
// 会话元数据写入Redis是尽力而为:写入失败只记日志,不影响登录
// (Token验证是无状态的,不依赖会话记录)
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	u, err := uc.userService.Login(ctx, req.Account, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := uc.jwtManager.GenerateToken(u.ID, u.Username, u.Email)
	if err != nil {
		return nil, err
	}

	if uc.sessions != nil {
		session := &redis.Session{
			UserID:    u.ID,
			Username:  u.Username,
			LoginAt:   time.Now(),
			ClientIP:  req.ClientIP,
			UserAgent: req.UserAgent,
		}
		if err := uc.sessions.Save(ctx, session); err != nil {
			logger.Warn("保存登录会话失败", "user_id", u.ID, "error", err)
		}
	}

	return &AuthResult{
		User:  toUserInfo(u),
		Token: token,
	}, nil
}
