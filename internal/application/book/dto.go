package book

import (
	"time"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
)

// BookDTO 图书DTO
// 价格单位为分(避免浮点数精度问题,由前端做展示换算)
type BookDTO struct {
	ID              uint      `json:"id"`
	ISBN            string    `json:"isbn"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Publisher       string    `json:"publisher,omitempty"`
	PublicationYear int       `json:"publication_year,omitempty"`
	Price           int64     `json:"price"` // 分
	Stock           int       `json:"stock"`
	Description     string    `json:"description,omitempty"`
	GenreID         uint      `json:"genre_id"`
	GenreName       string    `json:"genre_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BookListResult 图书列表结果
type BookListResult struct {
	Items []BookDTO `json:"items"`
	Total int64     `json:"total"`
}

func toBookDTO(b *book.Book, genreName string) BookDTO {
	return BookDTO{
		ID:              b.ID,
		ISBN:            b.ISBN,
		Title:           b.Title,
		Author:          b.Author,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		Price:           b.Price,
		Stock:           b.Stock,
		Description:     b.Description,
		GenreID:         b.GenreID,
		GenreName:       genreName,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
