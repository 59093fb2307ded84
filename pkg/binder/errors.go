package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder: content type is not application/json")
	ErrFailedToParseJSON    = errors.New("binder: body is not a JSON object")
	ErrBodyTooLarge         = errors.New("binder: body exceeds the size limit")
)
