package transaction

import (
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 交易领域错误定义
var (
	// ErrTransactionNotFound 交易不存在
	ErrTransactionNotFound = apperrors.New(apperrors.ErrCodeTransactionNotFound, "交易不存在")

	// ErrEmptyItems 交易明细为空
	ErrEmptyItems = apperrors.New(apperrors.ErrCodeInvalidParams, "交易明细不能为空")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")
)
