package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrCafeNotFound     = errors.New("cafe not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)
