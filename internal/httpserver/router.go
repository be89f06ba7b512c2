package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"catalog-api/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Category, error)
}

type ProductService interface {
	List(ctx context.Context) ([]domain.ProductDTO, error)
	Create(ctx context.Context, dto domain.ProductDTO) (*domain.ProductDTO, error)
	Update(ctx context.Context, id int64, dto domain.ProductDTO) (*domain.ProductDTO, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.ProductDTO, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.ProductDTO, error)
}

// Deps are the services the router dispatches to.
type Deps struct {
	CategorySvc CategoryService
	ProductSvc  ProductService
}

// buildRouter wires routes for the API. The CORS policy applies to every route.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.CategorySvc == nil || deps.ProductSvc == nil {
		return nil, errors.New("httpserver: category and product services are required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	if len(corsOrigins) > 0 {
		cfg := corsConfig(corsOrigins)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("httpserver: cors: %w", err)
		}
		router.Use(cors.New(cfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	categories := &categoryHandler{svc: deps.CategorySvc, logger: logger}
	cat := router.Group("/categorias")
	cat.GET("", categories.list)
	cat.POST("", categories.create)
	cat.GET("/:id", categories.get)
	cat.PUT("/:id", categories.update)
	cat.DELETE("/:id", categories.delete)

	products := &productHandler{svc: deps.ProductSvc, logger: logger}
	prod := router.Group("/produtos")
	prod.GET("", products.list)
	prod.POST("", products.create)
	prod.GET("/:id", products.get)
	prod.PUT("/:id", products.update)
	prod.DELETE("/:id", products.delete)
	prod.GET("/categoria/:categoriaId", products.listByCategory)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
