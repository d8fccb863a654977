package handler

import (
	"github.com/gin-gonic/gin"

	genreapp "github.com/xiebiao/bookstore-admin/internal/application/genre"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// GenreHandler 分类相关接口
type GenreHandler struct {
	uc *genreapp.UseCase
}

// NewGenreHandler 创建分类Handler
func NewGenreHandler(uc *genreapp.UseCase) *GenreHandler {
	return &GenreHandler{uc: uc}
}

// Create 创建分类
// @Summary 创建分类
// @Tags 分类
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGenreRequest true "分类信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /genre [post]
func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	g, err := h.uc.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, g)
}

// Get 分类详情
// @Summary 分类详情
// @Tags 分类
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /genre/{id} [get]
func (h *GenreHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	g, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, g)
}

// List 分类列表
// @Summary 分类列表
// @Tags 分类
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /genre [get]
func (h *GenreHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	result, err := h.uc.List(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Items, result.Total, query.Page, query.PageSize)
}

// Update 更新分类
// @Summary 更新分类
// @Tags 分类
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Param request body dto.UpdateGenreRequest true "分类信息"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /genre/{id} [put]
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	g, err := h.uc.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, g)
}

// Delete 删除分类
// @Summary 删除分类
// @Description 分类下仍有图书时拒绝删除
// @Tags 分类
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /genre/{id} [delete]
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
