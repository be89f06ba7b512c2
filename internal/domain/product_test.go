package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductDTO_SetCategory(t *testing.T) {
	var dto ProductDTO
	dto.SetCategory(&Category{ID: 1, Name: "Bebidas"})
	id, name, ok := dto.Category()
	if !ok || id != 1 || name != "Bebidas" {
		t.Fatalf("unexpected category pair id=%d name=%q ok=%v", id, name, ok)
	}

	dto.SetCategory(nil)
	if dto.CategoryID != nil || dto.CategoryName != nil {
		t.Fatalf("expected both category fields cleared, got %+v", dto)
	}
	if _, _, ok := dto.Category(); ok {
		t.Fatalf("expected no category")
	}
}

func TestProductDTO_CategoryRequiresBothHalves(t *testing.T) {
	id := int64(3)
	dto := ProductDTO{CategoryID: &id}
	if _, _, ok := dto.Category(); ok {
		t.Fatalf("expected half-filled pair to report no category")
	}
}

func TestProductDTO_JSON(t *testing.T) {
	dto := ProductDTO{ID: 7, Name: "Suco", Description: "Suco de laranja", Price: decimal.RequireFromString("5.50")}
	dto.SetCategory(&Category{ID: 1, Name: "Bebidas"})

	raw, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, want := range []string{`"id":7`, `"nome":"Suco"`, `"descricao":"Suco de laranja"`, `"preco":5.5`, `"categoriaId":1`, `"categoriaNome":"Bebidas"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}

	var decoded ProductDTO
	if err := json.Unmarshal([]byte(`{"nome":"Agua","descricao":"","preco":2.25,"categoriaId":4}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.CategoryID == nil || *decoded.CategoryID != 4 || !decoded.Price.Equal(decimal.RequireFromString("2.25")) {
		t.Fatalf("unexpected decoded dto %+v", decoded)
	}
	if decoded.CategoryName != nil {
		t.Fatalf("expected no category name, got %q", *decoded.CategoryName)
	}
}

func TestProductDTO_JSONWithoutCategory(t *testing.T) {
	raw, err := json.Marshal(ProductDTO{ID: 2, Name: "Avulso", Price: decimal.NewFromInt(3)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if !strings.Contains(body, `"categoriaId":null`) || !strings.Contains(body, `"categoriaNome":null`) {
		t.Fatalf("expected null category pair, got %s", body)
	}
}

func TestProductDTO_PriceIsNumberRegardlessOfDecimalDefaults(t *testing.T) {
	if decimal.MarshalJSONWithoutQuotes {
		t.Fatalf("expected package default of quoted decimals")
	}
	raw, err := json.Marshal([]ProductDTO{{ID: 1, Price: decimal.RequireFromString("5.555")}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"preco":5.555`) {
		t.Fatalf("expected unquoted price, got %s", raw)
	}
}
