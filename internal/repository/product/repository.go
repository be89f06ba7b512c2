package product

import (
	"context"

	"catalog-api/internal/domain"
)

// Repository persists products. Returned products carry their resolved category.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Save(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
