// Package router 路由注册
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
)

// Handlers 路由依赖的Handler集合
type Handlers struct {
	User        *handler.UserHandler
	Genre       *handler.GenreHandler
	Book        *handler.BookHandler
	Transaction *handler.TransactionHandler
}

// New 创建gin引擎并注册全部路由
//
// 鉴权策略:
// - 注册/登录/查询类接口开放
// - 写操作(分类/图书的增删改、交易创建)需要登录
func New(cfg *config.Config, h Handlers, auth *middleware.Auth, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.Metrics(m),
	)

	// 运维端点
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	engine.GET("/metrics", gin.WrapH(m.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := auth.RequireAuth()

	// 认证
	authGroup := engine.Group("/auth")
	{
		authGroup.POST("/register", h.User.Register)
		authGroup.POST("/login", h.User.Login)
		authGroup.GET("/profile", requireAuth, h.User.Profile)
	}

	// 分类
	genreGroup := engine.Group("/genre")
	{
		genreGroup.GET("", h.Genre.List)
		genreGroup.GET("/:id", h.Genre.Get)
		genreGroup.POST("", requireAuth, h.Genre.Create)
		genreGroup.PUT("/:id", requireAuth, h.Genre.Update)
		genreGroup.DELETE("/:id", requireAuth, h.Genre.Delete)
	}

	// 图书
	bookGroup := engine.Group("/books")
	{
		bookGroup.GET("", h.Book.List)
		bookGroup.GET("/:id", h.Book.Get)
		bookGroup.POST("", requireAuth, h.Book.Create)
		bookGroup.PUT("/:id", requireAuth, h.Book.Update)
		bookGroup.DELETE("/:id", requireAuth, h.Book.Delete)
	}

	// 交易
	// /statistics是静态路由,需在/:id之前注册
	txGroup := engine.Group("/transactions")
	{
		txGroup.GET("/statistics", h.Transaction.Statistics)
		txGroup.GET("", h.Transaction.List)
		txGroup.GET("/:id", h.Transaction.Get)
		txGroup.POST("", requireAuth, h.Transaction.Create)
	}

	return engine
}
