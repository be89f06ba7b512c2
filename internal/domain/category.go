package domain

// Category is a named grouping that products may reference.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}
