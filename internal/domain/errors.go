package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrCategoryRequired is returned when a product is created without a category id.
	ErrCategoryRequired = errors.New("category id required")
	// ErrCategoryNotFound is returned when a product references a category that does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryInUse is returned when a category is still referenced by products.
	ErrCategoryInUse = errors.New("category in use")
)
