package handler

import (
	"github.com/gin-gonic/gin"

	bookapp "github.com/xiebiao/bookstore-admin/internal/application/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// BookHandler 图书相关接口
type BookHandler struct {
	createUC *bookapp.CreateBookUseCase
	queryUC  *bookapp.QueryBooksUseCase
	updateUC *bookapp.UpdateBookUseCase
}

// NewBookHandler 创建图书Handler
func NewBookHandler(
	createUC *bookapp.CreateBookUseCase,
	queryUC *bookapp.QueryBooksUseCase,
	updateUC *bookapp.UpdateBookUseCase,
) *BookHandler {
	return &BookHandler{
		createUC: createUC,
		queryUC:  queryUC,
		updateUC: updateUC,
	}
}

// Create 创建图书
// @Summary 创建图书
// @Description genre_id与genre_name二选一,按名称解析时不存在的分类自动创建
// @Tags 图书
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookRequest true "图书信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), bookapp.CreateBookRequest{
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		Stock:           req.Stock,
		Description:     req.Description,
		GenreID:         req.GenreID,
		GenreName:       req.GenreName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, b)
}

// Get 图书详情
// @Summary 图书详情
// @Tags 图书
// @Produce json
// @Param id path int true "图书ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.queryUC.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, b)
}

// List 图书列表
// @Summary 图书列表
// @Description 支持关键词搜索(标题/作者/出版社)、价格区间过滤与排序
// @Tags 图书
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Param keyword query string false "搜索关键词"
// @Param author query string false "按作者过滤"
// @Param publisher query string false "按出版社过滤"
// @Param price_min query int false "价格下限(分)"
// @Param price_max query int false "价格上限(分)"
// @Param sort_by query string false "排序(price_asc/price_desc/created_at_desc)"
// @Success 200 {object} response.Response
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	result, err := h.queryUC.List(c.Request.Context(), book.ListParams{
		Page:      query.Page,
		PageSize:  query.PageSize,
		Keyword:   query.Keyword,
		Author:    query.Author,
		Publisher: query.Publisher,
		PriceMin:  query.PriceMin,
		PriceMax:  query.PriceMax,
		SortBy:    query.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Items, result.Total, query.Page, query.PageSize)
}

// Update 更新图书
// @Summary 更新图书
// @Tags 图书
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "图书ID"
// @Param request body dto.UpdateBookRequest true "图书信息"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), id, bookapp.UpdateBookRequest{
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		Stock:           req.Stock,
		Description:     req.Description,
		GenreID:         req.GenreID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, b)
}

// Delete 删除图书
// @Summary 删除图书
// @Tags 图书
// @Produce json
// @Security BearerAuth
// @Param id path int true "图书ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.updateUC.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
