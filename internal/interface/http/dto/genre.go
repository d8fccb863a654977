package dto

// CreateGenreRequest 创建分类请求
type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// UpdateGenreRequest 更新分类请求
type UpdateGenreRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// PageQuery 通用分页查询参数
type PageQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=10" binding:"min=1,max=100"`
}
