package product

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/internal/domain"
	productrepo "catalog-api/internal/repository/product"
)

// CategoryReader resolves the category a product references.
type CategoryReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}

type Service struct {
	repo       productrepo.Repository
	categories CategoryReader
}

func New(repo productrepo.Repository, categories CategoryReader) *Service {
	return &Service{repo: repo, categories: categories}
}

func (s *Service) List(ctx context.Context) ([]domain.ProductDTO, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(products), nil
}

// Create resolves dto's category, stores a new product built from it and
// returns the stored product. Nothing is stored when the category is missing.
func (s *Service) Create(ctx context.Context, dto domain.ProductDTO) (*domain.ProductDTO, error) {
	return s.save(ctx, 0, dto)
}

// Update replaces product id with dto, resolving the category the same way
// Create does. It returns domain.ErrNotFound when no product has the id.
func (s *Service) Update(ctx context.Context, id int64, dto domain.ProductDTO) (*domain.ProductDTO, error) {
	return s.save(ctx, id, dto)
}

func (s *Service) save(ctx context.Context, id int64, dto domain.ProductDTO) (*domain.ProductDTO, error) {
	category, err := s.resolveCategory(ctx, dto.CategoryID)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, domain.Product{
		ID:          id,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Category:    category,
	})
	if err != nil {
		return nil, err
	}
	out := ToDTO(*saved)
	return &out, nil
}

func (s *Service) resolveCategory(ctx context.Context, id *int64) (*domain.Category, error) {
	if id == nil {
		return nil, domain.ErrCategoryRequired
	}
	category, err := s.categories.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: id=%d", domain.ErrCategoryNotFound, *id)
		}
		return nil, fmt.Errorf("resolve category %d: %w", *id, err)
	}
	return category, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Get returns nil without an error when no product has the id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.ProductDTO, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	out := ToDTO(*p)
	return &out, nil
}

// ListByCategory returns the products of List whose category id is
// categoryID, in the same relative order.
func (s *Service) ListByCategory(ctx context.Context, categoryID int64) ([]domain.ProductDTO, error) {
	products, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toDTOs(products), nil
}

// ToDTO maps a stored product to its transfer representation.
func ToDTO(p domain.Product) domain.ProductDTO {
	dto := domain.ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
	dto.SetCategory(p.Category)
	return dto
}

func toDTOs(products []domain.Product) []domain.ProductDTO {
	out := make([]domain.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ToDTO(p))
	}
	return out
}
