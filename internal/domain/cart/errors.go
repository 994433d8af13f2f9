package cart

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrItemNotFound 购物车条目不存在(或不属于当前用户)
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车条目不存在")

	// ErrInvalidQuantity 数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")

	// ErrEmptyCart 购物车为空(结算时)
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeEmptyCart, "购物车为空")
)
