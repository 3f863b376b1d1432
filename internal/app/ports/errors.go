package ports

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrInputClosed = errors.New("input closed")
)
