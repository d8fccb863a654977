// Package handler HTTP处理器
// 职责:参数绑定与解析 → 调用应用层用例 → 统一响应
// 业务规则不在此层,Handler保持薄
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// parseIDParam 解析路径中的:id参数
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "无效的ID")
	}
	return uint(id), nil
}
