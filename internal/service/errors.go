package service

import "errors"

// 对外可见的业务错误，handler 用 errors.Is 映射到 HTTP 状态码
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
