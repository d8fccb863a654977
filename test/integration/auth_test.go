package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	// 注册
	code, resp := s.request(http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	userInfo := data["user"].(map[string]interface{})
	assert.Equal(t, "alice", userInfo["username"])
	assert.NotEmpty(t, data["token"].(map[string]interface{})["access_token"])

	// 重复用户名
	code, resp = s.request(http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "alice",
		"email":    "other@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, resp["success"])

	// 登录(用户名)
	code, resp = s.request(http.MethodPost, "/auth/login", "", map[string]interface{}{
		"account":  "alice",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, code)
	token := resp["data"].(map[string]interface{})["token"].(map[string]interface{})["access_token"].(string)

	// 登录(邮箱)
	code, _ = s.request(http.MethodPost, "/auth/login", "", map[string]interface{}{
		"account":  "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, code)

	// 密码错误与账号不存在统一返回401,不泄露账号是否存在
	code, _ = s.request(http.MethodPost, "/auth/login", "", map[string]interface{}{
		"account":  "alice",
		"password": "wrongpassword1",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.request(http.MethodPost, "/auth/login", "", map[string]interface{}{
		"account":  "nobody",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	// Profile需要Token
	code, _ = s.request(http.MethodGet, "/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, resp = s.request(http.MethodGet, "/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", resp["data"].(map[string]interface{})["username"])

	// 伪造Token被拒绝
	code, _ = s.request(http.MethodGet, "/auth/profile", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRegister_WeakPassword(t *testing.T) {
	s := newTestServer(t)

	// 纯字母密码通过binding长度校验,被领域层强度校验拒绝
	code, resp := s.request(http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "passwordonly",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, resp["success"])
}
