package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrEmptyExport  = errors.New("no fixtures matched the selection")
)
