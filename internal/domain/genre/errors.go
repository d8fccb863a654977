package genre

import (
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrGenreNotFound 分类不存在
	ErrGenreNotFound = apperrors.New(apperrors.ErrCodeGenreNotFound, "分类不存在")

	// ErrNameDuplicate 分类名已存在
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeGenreDuplicate, "分类名已存在")

	// ErrGenreInUse 分类下仍有图书，不能删除
	ErrGenreInUse = apperrors.New(apperrors.ErrCodeGenreInUse, "分类下仍有图书，不能删除")

	// ErrInvalidName 分类名不合法
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "分类名不能为空且不超过50个字符")
)
