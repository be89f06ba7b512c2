package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Description string
	Price       string
	Category    string
}

// Apply inserts basic seed data for manual testing. Rows are matched by name,
// so running it twice does not duplicate anything.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := map[string]int64{}
	for _, name := range []string{"Bebidas", "Limpeza"} {
		id, err := ensureCategory(ctx, pool, name)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", name, err)
		}
		categories[name] = id
	}

	products := []productSeed{
		{Name: "Suco", Description: "Suco de laranja", Price: "5.50", Category: "Bebidas"},
		{Name: "Agua", Description: "Agua mineral sem gas", Price: "2.00", Category: "Bebidas"},
		{Name: "Detergente", Description: "Detergente neutro 500ml", Price: "3.49", Category: "Limpeza"},
	}

	for _, p := range products {
		if err := ensureProduct(ctx, pool, categories[p.Category], p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string) (int64, error) {
	const q = `
WITH existing AS (
    SELECT id FROM categories WHERE name = $1 ORDER BY id LIMIT 1
), inserted AS (
    INSERT INTO categories (name)
    SELECT $1 WHERE NOT EXISTS (SELECT 1 FROM existing)
    RETURNING id
)
SELECT id FROM existing
UNION ALL
SELECT id FROM inserted
`
	var id int64
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, categoryID int64, p productSeed) error {
	const q = `
INSERT INTO products (name, description, price, category_id)
SELECT $1, $2, $3::numeric, $4
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Price, categoryID)
	return err
}
