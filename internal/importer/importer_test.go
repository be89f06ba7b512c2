package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"catalog-api/internal/domain"
	"github.com/shopspring/decimal"
)

type stubProductService struct {
	items []domain.ProductDTO
	known map[int64]bool
}

func (s *stubProductService) Create(_ context.Context, dto domain.ProductDTO) (*domain.ProductDTO, error) {
	if !s.known[*dto.CategoryID] {
		return nil, domain.ErrCategoryNotFound
	}
	s.items = append(s.items, dto)
	return &dto, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `nome,descricao,preco,categoriaId
Suco,Suco de laranja,5.50,1
,,,
Detergente,"Neutro, 500ml",3.49,2,
`
	svc := &stubProductService{known: map[int64]bool{1: true, 2: true}}
	imp := NewCSVImporter(strings.NewReader(csvData), svc)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 || len(svc.items) != 2 {
		t.Fatalf("expected 2 products imported, got %d (%d saved)", count, len(svc.items))
	}

	first := svc.items[0]
	if first.Name != "Suco" || first.Description != "Suco de laranja" || !first.Price.Equal(decimal.RequireFromString("5.5")) || *first.CategoryID != 1 {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if svc.items[1].Description != "Neutro, 500ml" || *svc.items[1].CategoryID != 2 {
		t.Fatalf("unexpected second product: %+v", svc.items[1])
	}
}

func TestCSVImporter_StopsOnUnknownCategory(t *testing.T) {
	csvData := `nome,descricao,preco,categoriaId
Suco,,5.50,1
Fantasma,,1.00,999
Agua,,2.00,1
`
	svc := &stubProductService{known: map[int64]bool{1: true}}
	count, err := NewCSVImporter(strings.NewReader(csvData), svc).Run(context.Background())
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if count != 1 || len(svc.items) != 1 {
		t.Fatalf("expected import to stop after first row, got %d", count)
	}
}

func TestCSVImporter_MissingColumn(t *testing.T) {
	csvData := `nome,descricao,preco
Suco,,5.50
`
	_, err := NewCSVImporter(strings.NewReader(csvData), &stubProductService{}).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "categoriaId") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestCSVImporter_InvalidPrice(t *testing.T) {
	csvData := `nome,descricao,preco,categoriaId
Suco,,cinco,1
`
	svc := &stubProductService{known: map[int64]bool{1: true}}
	_, err := NewCSVImporter(strings.NewReader(csvData), svc).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("expected row error, got %v", err)
	}
}
