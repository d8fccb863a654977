//go:build wireinject
// +build wireinject

// wire依赖注入定义
// 执行 wire ./cmd/api 生成wire_gen.go;当前main.go使用手动注入,
// 此文件描述同一张依赖图,供后续切换到生成代码
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
	"github.com/xiebiao/bookstore-admin/pkg/mq"
)

func provideDatabaseConfig(cfg *config.Config) config.DatabaseConfig { return cfg.Database }

func provideRedisConfig(cfg *config.Config) config.RedisConfig { return cfg.Redis }

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire, cfg.JWT.Issuer)
}

func provideSessionStore(client *goredis.Client, cfg *config.Config) *redisrepo.SessionStore {
	return redisrepo.NewSessionStore(client, cfg.JWT.Expire)
}

// providePublisher MQ未启用时返回nil,用例侧做nil守卫
func providePublisher(cfg *config.Config) (*mq.Publisher, error) {
	if !cfg.MQ.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
}

var infrastructureSet = wire.NewSet(
	provideDatabaseConfig,
	provideRedisConfig,
	provideJWTManager,
	provideSessionStore,
	providePublisher,
	mysql.NewDB,
	redisrepo.NewClient,
	metrics.New,
)

var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewGenreRepository,
	mysql.NewBookRepository,
	mysql.NewTransactionRepository,
	mysql.NewTxManager,
	wire.Bind(new(book.Repository), new(*mysql.BookRepository)),
	wire.Bind(new(genre.BookCounter), new(*mysql.BookRepository)),
)

var domainSet = wire.NewSet(
	user.NewService,
	genre.NewService,
	book.NewService,
)

var applicationSet = wire.NewSet(
	userapp.NewRegisterUseCase,
	userapp.NewLoginUseCase,
	userapp.NewProfileUseCase,
	genreapp.NewUseCase,
	bookapp.NewCreateBookUseCase,
	bookapp.NewQueryBooksUseCase,
	bookapp.NewUpdateBookUseCase,
	txapp.NewCreateTransactionUseCase,
	txapp.NewQueryTransactionsUseCase,
	txapp.NewStatisticsUseCase,
)

var interfaceSet = wire.NewSet(
	middleware.NewAuth,
	handler.NewUserHandler,
	handler.NewGenreHandler,
	handler.NewBookHandler,
	handler.NewTransactionHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 组装完整的HTTP服务
func InitializeApp(cfg *config.Config) (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
	)
	return nil, nil
}
