package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"catalog-api/internal/config"
	"catalog-api/internal/db"
	"catalog-api/internal/importer"
	categoryrepo "catalog-api/internal/repository/category"
	productrepo "catalog-api/internal/repository/product"
	productsvc "catalog-api/internal/service/product"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a product CSV (nome,descricao,preco,categoriaId)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	svc := productsvc.New(productrepo.NewPostgres(pool, nil), categoryrepo.NewPostgres(pool))
	imp := importer.NewCSVImporter(f, svc)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", count, err)
	}

	logger.Printf("imported %d products in %s", count, time.Since(start).Truncate(time.Millisecond))
}
