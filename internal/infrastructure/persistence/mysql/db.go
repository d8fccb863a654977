package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
)

// =========================================
// GORM数据模型定义
// =========================================
// 设计说明:
// 1. 领域实体(domain层)不携带GORM tag,此处定义独立的数据模型
// 2. Repository实现负责实体与模型之间的双向转换
// 3. 交易与交易明细不使用软删除(交易记录不可删除)

// UserModel 用户数据模型
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(128);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(128);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string { return "users" }

// GenreModel 分类数据模型
type GenreModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GenreModel) TableName() string { return "genres" }

// BookModel 图书数据模型
type BookModel struct {
	ID              uint   `gorm:"primaryKey"`
	ISBN            string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Title           string `gorm:"type:varchar(256);uniqueIndex;not null"`
	Author          string `gorm:"type:varchar(128);index"`
	Publisher       string `gorm:"type:varchar(128);index"`
	PublicationYear int
	Price           int64  `gorm:"not null"` // 分
	Stock           int    `gorm:"not null;default:0"`
	Description     string `gorm:"type:text"`
	GenreID         uint   `gorm:"index;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (BookModel) TableName() string { return "books" }

// TransactionModel 交易数据模型
type TransactionModel struct {
	ID            uint   `gorm:"primaryKey"`
	TransactionNo string `gorm:"type:varchar(32);uniqueIndex;not null"`
	UserID        uint   `gorm:"index;not null"`
	TotalAmount   int64  `gorm:"not null"` // 分
	CreatedAt     time.Time
	Details       []TransactionDetailModel `gorm:"foreignKey:TransactionID"`
}

func (TransactionModel) TableName() string { return "transactions" }

// TransactionDetailModel 交易明细数据模型
type TransactionDetailModel struct {
	ID            uint  `gorm:"primaryKey"`
	TransactionID uint  `gorm:"index;not null"`
	BookID        uint  `gorm:"index;not null"`
	Quantity      int   `gorm:"not null"`
	Price         int64 `gorm:"not null"` // 成交单价快照(分)
	Subtotal      int64 `gorm:"not null"`
}

func (TransactionDetailModel) TableName() string { return "transaction_details" }

// NewDB 初始化MySQL连接
func NewDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取数据库连接池失败: %w", err)
	}

	// 连接池配置
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate 自动建表
// 测试环境(sqlite)复用同一组模型
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&UserModel{},
		&GenreModel{},
		&BookModel{},
		&TransactionModel{},
		&TransactionDetailModel{},
	); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}

	// 分类名唯一性按区分大小写处理("Fiction"与"fiction"是两个分类)。
	// MySQL默认的utf8mb4_0900_ai_ci排序规则不区分大小写,这里显式
	// 改为二进制排序规则;sqlite本身区分大小写,无需处理
	if db.Dialector.Name() == "mysql" {
		if err := db.Exec(
			"ALTER TABLE genres MODIFY name VARCHAR(64) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
		).Error; err != nil {
			return fmt.Errorf("设置分类名排序规则失败: %w", err)
		}
	}
	return nil
}
