// 书店后台管理服务入口
//
// 启动流程:加载配置 → 初始化日志 → 连接MySQL/Redis →
// 手动依赖注入 → 注册路由 → 启动HTTP服务(优雅关闭)
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	"github.com/xiebiao/bookstore-admin/pkg/logger"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "服务启动失败: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.EnableCaller); err != nil {
		return err
	}
	defer logger.Sync()

	// 基础设施
	db, err := mysql.NewDB(cfg.Database)
	if err != nil {
		return err
	}

	redisClient, err := redisrepo.NewClient(cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	var publisher *mq.Publisher
	if cfg.MQ.Enabled {
		publisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			return err
		}
		defer publisher.Close()
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire, cfg.JWT.Issuer)
	m := metrics.New()
	sessions := redisrepo.NewSessionStore(redisClient, cfg.JWT.Expire)

	// 仓储
	userRepo := mysql.NewUserRepository(db)
	genreRepo := mysql.NewGenreRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	txRepo := mysql.NewTransactionRepository(db)
	txManager := mysql.NewTxManager(db)

	// 领域服务
	userService := user.NewService(userRepo)
	genreService := genre.NewService(genreRepo, bookRepo)
	bookService := book.NewService(bookRepo)

	// 应用用例
	registerUC := userapp.NewRegisterUseCase(userService, jwtManager)
	loginUC := userapp.NewLoginUseCase(userService, jwtManager, sessions)
	profileUC := userapp.NewProfileUseCase(userRepo)
	genreUC := genreapp.NewUseCase(genreService)
	createBookUC := bookapp.NewCreateBookUseCase(bookService, genreService)
	queryBooksUC := bookapp.NewQueryBooksUseCase(bookService, genreRepo)
	updateBookUC := bookapp.NewUpdateBookUseCase(bookService, genreService)
	createTxUC := txapp.NewCreateTransactionUseCase(txRepo, bookRepo, genreRepo, txManager, m, publisher)
	queryTxUC := txapp.NewQueryTransactionsUseCase(txRepo, bookRepo, genreRepo, userRepo)
	statsUC := txapp.NewStatisticsUseCase(txRepo)

	// 接口层
	auth := middleware.NewAuth(jwtManager)
	handlers := router.Handlers{
		User:        handler.NewUserHandler(registerUC, loginUC, profileUC),
		Genre:       handler.NewGenreHandler(genreUC),
		Book:        handler.NewBookHandler(createBookUC, queryBooksUC, updateBookUC),
		Transaction: handler.NewTransactionHandler(createTxUC, queryTxUC, statsUC),
	}
	engine := router.New(cfg, handlers, auth, m)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("服务启动", "port", cfg.Server.Port, "mode", cfg.Server.Mode)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("服务异常退出", "error", err)
		}
	}()

	// 优雅关闭:等待信号,给在途请求10秒处理时间
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务关闭中")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务关闭失败: %w", err)
	}

	logger.Info("服务已退出")
	return nil
}
