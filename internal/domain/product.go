package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product is the stored catalog item. Category is nil when the product has none.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    *Category
}

// ProductDTO is the boundary view of a product with its category denormalized.
// CategoryID and CategoryName are set and cleared together.
type ProductDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"nome"`
	Description  string          `json:"descricao"`
	Price        decimal.Decimal `json:"preco"`
	CategoryID   *int64          `json:"categoriaId"`
	CategoryName *string         `json:"categoriaNome"`
}

// SetCategory fills the category pair from c, or clears both when c is nil.
func (d *ProductDTO) SetCategory(c *Category) {
	if c == nil {
		d.CategoryID = nil
		d.CategoryName = nil
		return
	}
	id, name := c.ID, c.Name
	d.CategoryID = &id
	d.CategoryName = &name
}

// Category returns the denormalized category pair. ok is false unless both halves are present.
func (d ProductDTO) Category() (id int64, name string, ok bool) {
	if d.CategoryID == nil || d.CategoryName == nil {
		return 0, "", false
	}
	return *d.CategoryID, *d.CategoryName, true
}

// MarshalJSON writes preco as a JSON number rather than decimal's quoted string.
func (d ProductDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           int64       `json:"id"`
		Name         string      `json:"nome"`
		Description  string      `json:"descricao"`
		Price        json.Number `json:"preco"`
		CategoryID   *int64      `json:"categoriaId"`
		CategoryName *string     `json:"categoriaNome"`
	}{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Price:        json.Number(d.Price.String()),
		CategoryID:   d.CategoryID,
		CategoryName: d.CategoryName,
	})
}
