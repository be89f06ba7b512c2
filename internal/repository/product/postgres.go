package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"catalog-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const foreignKeyViolation = "23503"

const selectProducts = `
SELECT p.id, p.name, COALESCE(p.description, ''), p.price::text, c.id, c.name
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	result, err := r.query(ctx, selectProducts+`ORDER BY p.id ASC`)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	result, err := r.query(ctx, selectProducts+`WHERE p.category_id = $1 ORDER BY p.id ASC`, categoryID)
	if err != nil {
		r.logger.Printf("product repo: list category_id=%d error=%v", categoryID, err)
		return nil, err
	}
	r.logger.Printf("product repo: list category_id=%d count=%d", categoryID, len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, selectProducts+`WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return p, nil
}

// Save inserts p when it has no id, otherwise replaces the stored row.
// The returned product keeps p.Category as given and carries the stored price.
func (r *postgresRepo) Save(ctx context.Context, p domain.Product) (*domain.Product, error) {
	var categoryID *int64
	if p.Category != nil {
		id := p.Category.ID
		categoryID = &id
	}

	if p.ID == 0 {
		const q = `
INSERT INTO products (name, description, price, category_id)
VALUES ($1, $2, $3::numeric, $4)
RETURNING id, price::text
`
		res, err := scanSaved(r.pool.QueryRow(ctx, q, p.Name, p.Description, p.Price.String(), categoryID), p)
		if err != nil {
			r.logger.Printf("product repo: insert name=%s error=%v", p.Name, err)
			return nil, saveError(err)
		}
		r.logger.Printf("product repo: inserted id=%d", res.ID)
		return res, nil
	}

	const q = `
UPDATE products
SET name = $2, description = $3, price = $4::numeric, category_id = $5
WHERE id = $1
RETURNING id, price::text
`
	res, err := scanSaved(r.pool.QueryRow(ctx, q, p.ID, p.Name, p.Description, p.Price.String(), categoryID), p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%d error=%v", p.ID, err)
		return nil, saveError(err)
	}
	r.logger.Printf("product repo: updated id=%d", res.ID)
	return res, nil
}

func scanSaved(row pgx.Row, p domain.Product) (*domain.Product, error) {
	var price string
	if err := row.Scan(&p.ID, &price); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q for product %d: %w", price, p.ID, err)
	}
	p.Price = amount
	return &p, nil
}

// saveError reports a category removed after it was resolved as missing.
func saveError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, pgErr.Detail)
	}
	return err
}

// Delete is a no-op for unknown ids.
func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%d error=%v", id, err)
		return err
	}
	r.logger.Printf("product repo: delete id=%d rows=%d", id, tag.RowsAffected())
	return nil
}

func (r *postgresRepo) query(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p            domain.Product
		price        string
		categoryID   *int64
		categoryName *string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &categoryID, &categoryName); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q for product %d: %w", price, p.ID, err)
	}
	p.Price = amount
	if categoryID != nil {
		p.Category = &domain.Category{ID: *categoryID}
		if categoryName != nil {
			p.Category.Name = *categoryName
		}
	}
	return &p, nil
}
