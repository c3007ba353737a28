package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrPersistence        = errors.New("persistence failure")
	ErrUnsupportedInput   = errors.New("unsupported input format")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
