package dto

// CreateBookRequest 创建图书请求
// genre_id与genre_name二选一,优先genre_id
type CreateBookRequest struct {
	ISBN            string `json:"isbn" binding:"required"`
	Title           string `json:"title" binding:"required,max=200"`
	Author          string `json:"author" binding:"required,max=100"`
	Publisher       string `json:"publisher" binding:"max=100"`
	PublicationYear int    `json:"publication_year"`
	Price           int64  `json:"price" binding:"required,gt=0"` // 分
	Stock           int    `json:"stock" binding:"gte=0"`
	Description     string `json:"description"`
	GenreID         uint   `json:"genre_id"`
	GenreName       string `json:"genre_name" binding:"max=50"`
}

// UpdateBookRequest 更新图书请求(缺省字段不更新)
type UpdateBookRequest struct {
	Title           string `json:"title" binding:"max=200"`
	Author          string `json:"author" binding:"max=100"`
	Publisher       string `json:"publisher" binding:"max=100"`
	PublicationYear int    `json:"publication_year"`
	Price           int64  `json:"price" binding:"gte=0"`
	Stock           *int   `json:"stock" binding:"omitempty,gte=0"`
	Description     string `json:"description"`
	GenreID         uint   `json:"genre_id"`
}

// ListBooksQuery 图书列表查询参数
type ListBooksQuery struct {
	Page      int    `form:"page,default=1" binding:"min=1"`
	PageSize  int    `form:"page_size,default=10" binding:"min=1,max=100"`
	Keyword   string `form:"keyword"`
	Author    string `form:"author"`
	Publisher string `form:"publisher"`
	PriceMin  int64  `form:"price_min" binding:"gte=0"`
	PriceMax  int64  `form:"price_max" binding:"gte=0"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc created_at_desc"`
}
