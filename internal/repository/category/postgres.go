package category

import (
	"context"
	"errors"

	"catalog-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const foreignKeyViolation = "23503"

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT id, name
FROM categories
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	const q = `
SELECT id, name
FROM categories
WHERE id = $1
`
	var c domain.Category
	if err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Save inserts c when it has no id, otherwise replaces the stored row.
func (r *postgresRepo) Save(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if c.ID == 0 {
		const q = `
INSERT INTO categories (name)
VALUES ($1)
RETURNING id
`
		out := domain.Category{Name: c.Name}
		if err := r.pool.QueryRow(ctx, q, c.Name).Scan(&out.ID); err != nil {
			return nil, err
		}
		return &out, nil
	}

	const q = `
UPDATE categories
SET name = $2
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, c.ID, c.Name)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	out := c
	return &out, nil
}

// Delete is a no-op for unknown ids.
func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM categories WHERE id = $1`
	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return domain.ErrCategoryInUse
		}
		return err
	}
	return nil
}
