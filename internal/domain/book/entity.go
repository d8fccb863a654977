package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,包含图书的核心属性
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. Title与ISBN都是业务唯一标识(数据库层保证唯一性)
// 4. GenreID关联分类,每本图书必须属于一个分类
type Book struct {
	ID              uint
	ISBN            string // ISBN号(国际标准书号)
	Title           string // 书名
	Author          string // 作者
	Publisher       string // 出版社
	PublicationYear int    // 出版年份
	Price           int64  // 价格(单位:分,1元=100分)
	Stock           int    // 库存数量
	Description     string // 图书描述
	GenreID         uint   // 所属分类ID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(isbn, title, author, publisher string, publicationYear int, price int64, stock int, description string, genreID uint) *Book {
	now := time.Now()
	return &Book{
		ISBN:            isbn,
		Title:           title,
		Author:          author,
		Publisher:       publisher,
		PublicationYear: publicationYear,
		Price:           price,
		Stock:           stock,
		Description:     description,
		GenreID:         genreID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// UpdatePrice 更新价格(领域行为)
// 业务规则:价格必须>0
func (b *Book) UpdatePrice(newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateStock 更新库存(领域行为)
// 业务规则:库存不能为负数
func (b *Book) UpdateStock(newStock int) error {
	if newStock < 0 {
		return ErrInvalidStock
	}
	b.Stock = newStock
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息(空字段保持不变)
func (b *Book) UpdateInfo(title, author, publisher, description string, publicationYear int) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if publisher != "" {
		b.Publisher = publisher
	}
	if description != "" {
		b.Description = description
	}
	if publicationYear != 0 {
		b.PublicationYear = publicationYear
	}
	b.UpdatedAt = time.Now()
}
