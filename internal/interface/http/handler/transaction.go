package handler

import (
	"github.com/gin-gonic/gin"

	txapp "github.com/xiebiao/bookstore-admin/internal/application/transaction"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// TransactionHandler 交易相关接口
type TransactionHandler struct {
	createUC *txapp.CreateTransactionUseCase
	queryUC  *txapp.QueryTransactionsUseCase
	statsUC  *txapp.StatisticsUseCase
}

// NewTransactionHandler 创建交易Handler
func NewTransactionHandler(
	createUC *txapp.CreateTransactionUseCase,
	queryUC *txapp.QueryTransactionsUseCase,
	statsUC *txapp.StatisticsUseCase,
) *TransactionHandler {
	return &TransactionHandler{
		createUC: createUC,
		queryUC:  queryUC,
		statsUC:  statsUC,
	}
}

// Create 创建交易
// @Summary 创建销售交易
// @Description 校验库存、锁定成交价格,交易记录与库存扣减原子提交
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTransactionRequest true "交易行项目"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	items := make([]txapp.TransactionItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, txapp.TransactionItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		})
	}

	result, err := h.createUC.Execute(c.Request.Context(), txapp.CreateTransactionRequest{
		UserID:   middleware.MustGetUserID(c),
		Username: middleware.MustGetUsername(c),
		Items:    items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Get 交易详情
// @Summary 交易详情
// @Tags 交易
// @Produce json
// @Param id path int true "交易ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.queryUC.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 交易列表
// @Summary 交易列表
// @Tags 交易
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	result, err := h.queryUC.List(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Items, result.Total, query.Page, query.PageSize)
}

// Statistics 销售统计
// @Summary 销售统计
// @Description 交易总数、平均交易金额、最受欢迎与最不受欢迎分类
// @Tags 交易
// @Produce json
// @Success 200 {object} response.Response
// @Router /transactions/statistics [get]
func (h *TransactionHandler) Statistics(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
