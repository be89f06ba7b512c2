package main

import (
	"context"
	"flag"
	"log"
	"os"

	"catalog-api/internal/config"
	"catalog-api/internal/db"
	"catalog-api/internal/migrate"
	"catalog-api/internal/seed"
)

func main() {
	var withMigrations bool
	flag.BoolVar(&withMigrations, "migrate", false, "Apply migrations before seeding")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if withMigrations {
		if err := migrate.Apply(ctx, pool); err != nil {
			logger.Fatalf("apply migrations: %v", err)
		}
	}

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
