package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// Session 登录会话元数据
// 说明:Token本身是无状态验证(JWT签名),此处只记录登录信息
// 用于后台查看在线状态,不参与请求鉴权。
type Session struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	LoginAt   time.Time `json:"login_at"`
	ClientIP  string    `json:"client_ip"`
	UserAgent string    `json:"user_agent"`
}

// ErrSessionNotFound 会话不存在或已过期
var ErrSessionNotFound = errors.New("会话不存在")

// SessionStore 登录会话存储
type SessionStore struct {
	client *redis.Client
	expire time.Duration
}

// NewSessionStore 创建会话存储
// expire通常与JWT过期时间一致
func NewSessionStore(client *redis.Client, expire time.Duration) *SessionStore {
	return &SessionStore{client: client, expire: expire}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("bookstore:session:%d", userID)
}

// Save 保存会话(同一用户重复登录覆盖旧会话)
func (s *SessionStore) Save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return apperrors.Wrap(err, "序列化会话失败")
	}

	if err := s.client.Set(ctx, sessionKey(session.UserID), data, s.expire).Err(); err != nil {
		return apperrors.New(apperrors.ErrCodeRedisError, "保存会话失败")
	}
	return nil
}

// Get 获取会话
func (s *SessionStore) Get(ctx context.Context, userID uint) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, apperrors.New(apperrors.ErrCodeRedisError, "查询会话失败")
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperrors.Wrap(err, "解析会话失败")
	}
	return &session, nil
}

// Delete 删除会话
func (s *SessionStore) Delete(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return apperrors.New(apperrors.ErrCodeRedisError, "删除会话失败")
	}
	return nil
}
