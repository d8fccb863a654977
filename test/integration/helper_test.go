// Package integration 集成测试
// 在进程内组装完整HTTP服务(sqlite内存库+miniredis),
// 通过httptest走真实的路由、中间件与持久化路径
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	bookapp "github.com/xiebiao/bookstore-admin/internal/application/book"
	genreapp "github.com/xiebiao/bookstore-admin/internal/application/genre"
	txapp "github.com/xiebiao/bookstore-admin/internal/application/transaction"
	userapp "github.com/xiebiao/bookstore-admin/internal/application/user"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	"github.com/xiebiao/bookstore-admin/internal/domain/user"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/mysql"
	redisrepo "github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/router"
	"github.com/xiebiao/bookstore-admin/pkg/jwt"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
)

type testServer struct {
	engine *gin.Engine
	t      *testing.T
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, mysql.AutoMigrate(db))

	mr := miniredis.RunT(t)
	redisClient := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, Mode: gin.TestMode},
		JWT:    config.JWTConfig{Secret: "test-secret", Expire: time.Hour, Issuer: "bookstore-test"},
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire, cfg.JWT.Issuer)
	m := metrics.New()
	sessions := redisrepo.NewSessionStore(redisClient, cfg.JWT.Expire)

	userRepo := mysql.NewUserRepository(db)
	genreRepo := mysql.NewGenreRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	txRepo := mysql.NewTransactionRepository(db)
	txManager := mysql.NewTxManager(db)

	userService := user.NewService(userRepo)
	genreService := genre.NewService(genreRepo, bookRepo)
	bookService := book.NewService(bookRepo)

	handlers := router.Handlers{
		User: handler.NewUserHandler(
			userapp.NewRegisterUseCase(userService, jwtManager),
			userapp.NewLoginUseCase(userService, jwtManager, sessions),
			userapp.NewProfileUseCase(userRepo),
		),
		Genre: handler.NewGenreHandler(genreapp.NewUseCase(genreService)),
		Book: handler.NewBookHandler(
			bookapp.NewCreateBookUseCase(bookService, genreService),
			bookapp.NewQueryBooksUseCase(bookService, genreRepo),
			bookapp.NewUpdateBookUseCase(bookService, genreService),
		),
		Transaction: handler.NewTransactionHandler(
			txapp.NewCreateTransactionUseCase(txRepo, bookRepo, genreRepo, txManager, m, nil),
			txapp.NewQueryTransactionsUseCase(txRepo, bookRepo, genreRepo, userRepo),
			txapp.NewStatisticsUseCase(txRepo),
		),
	}

	engine := router.New(cfg, handlers, middleware.NewAuth(jwtManager), m)
	return &testServer{engine: engine, t: t}
}

// request 发送JSON请求,返回状态码与解析后的响应体
func (s *testServer) request(method, path, token string, body interface{}) (int, map[string]interface{}) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

// newRawRequest 构造非JSON响应端点(如/metrics)的请求
func newRawRequest(method, path string) (*http.Request, *httptest.ResponseRecorder) {
	return httptest.NewRequest(method, path, nil), httptest.NewRecorder()
}

// registerAndLogin 注册测试用户并返回访问Token
func (s *testServer) registerAndLogin(username string) string {
	s.t.Helper()

	code, resp := s.request(http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": username,
		"email":    fmt.Sprintf("%s@example.com", username),
		"password": "password123",
	})
	require.Equal(s.t, http.StatusCreated, code)

	data := resp["data"].(map[string]interface{})
	token := data["token"].(map[string]interface{})
	return token["access_token"].(string)
}

// createBook 通过API创建图书并返回图书ID
func (s *testServer) createBook(token, title, isbn string, price int64, stock int, genreName string) uint {
	s.t.Helper()

	code, resp := s.request(http.MethodPost, "/books", token, map[string]interface{}{
		"isbn":       isbn,
		"title":      title,
		"author":     "测试作者",
		"price":      price,
		"stock":      stock,
		"genre_name": genreName,
	})
	require.Equal(s.t, http.StatusCreated, code)

	data := resp["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}
