package seed

import (
	"context"
	"os"
	"testing"
	"time"

	"catalog-api/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("postgres not configured: %v", err)
	}
	defer pool.Close()
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		t.Skipf("postgres not reachable: %v", err)
	}

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE products, categories RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := Apply(ctx, pool); err != nil {
			t.Fatalf("apply seed run %d: %v", i+1, err)
		}
	}

	var categories, products int
	if err := pool.QueryRow(ctx, `SELECT (SELECT count(*) FROM categories), (SELECT count(*) FROM products)`).Scan(&categories, &products); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if categories != 2 || products != 3 {
		t.Fatalf("expected 2 categories and 3 products, got %d and %d", categories, products)
	}

	var categoryName string
	if err := pool.QueryRow(ctx, `SELECT c.name FROM products p JOIN categories c ON c.id = p.category_id WHERE p.name = 'Suco'`).Scan(&categoryName); err != nil {
		t.Fatalf("lookup suco: %v", err)
	}
	if categoryName != "Bebidas" {
		t.Fatalf("expected Suco in Bebidas, got %q", categoryName)
	}
}
