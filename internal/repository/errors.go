package repository

import "errors"

var (
	ErrNotFound         = errors.New("entity not found")
	ErrConnectionFailed = errors.New("catalog connection failed")
)
