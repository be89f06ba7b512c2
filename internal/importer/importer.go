package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"catalog-api/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductCreator is the product service operation rows are fed through.
type ProductCreator interface {
	Create(ctx context.Context, dto domain.ProductDTO) (*domain.ProductDTO, error)
}

// CSVImporter reads product rows with a nome,descricao,preco,categoriaId
// header and creates one product per row.
type CSVImporter struct {
	reader   *csv.Reader
	products ProductCreator
}

func NewCSVImporter(r io.Reader, products ProductCreator) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:   csvr,
		products: products,
	}
}

var requiredColumns = []string{"nome", "preco", "categoriaId"}

// Run creates products until the input ends or a row fails. It returns the
// number of products created before the failure.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("missing column %q", col)
		}
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}
		if blank(record) {
			continue
		}

		dto, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if _, err := i.products.Create(ctx, dto); err != nil {
			return imported, fmt.Errorf("row %d: create product %q: %w", line, dto.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (domain.ProductDTO, error) {
	name := pick(record, index, "nome")
	if name == "" {
		return domain.ProductDTO{}, errors.New("nome is empty")
	}
	price, err := decimal.NewFromString(pick(record, index, "preco"))
	if err != nil {
		return domain.ProductDTO{}, fmt.Errorf("invalid preco: %w", err)
	}
	categoryID, err := strconv.ParseInt(pick(record, index, "categoriaId"), 10, 64)
	if err != nil {
		return domain.ProductDTO{}, fmt.Errorf("invalid categoriaId: %w", err)
	}
	return domain.ProductDTO{
		Name:        name,
		Description: pick(record, index, "descricao"),
		Price:       price,
		CategoryID:  &categoryID,
	}, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
