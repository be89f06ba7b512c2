package category

import (
	"context"
	"errors"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository/category"
)

type Service struct {
	repo category.Repository
}

func New(repo category.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

// Create stores c under a new store-assigned id; any id on c is ignored.
func (s *Service) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	c.ID = 0
	return s.repo.Save(ctx, c)
}

// Update replaces the stored category with the same id.
func (s *Service) Update(ctx context.Context, c domain.Category) (*domain.Category, error) {
	return s.repo.Save(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Get returns nil without an error when no category has the id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return c, err
}
