package usecase

import "testing"

func TestCamelCaseWinsOverSnakeCase(t *testing.T) {
	item := normalizeLineItem(RawPayload{
		"productId":  "camel",
		"product_id": "snake",
	})
	if item.ProductID != "camel" {
		t.Fatalf("expected camelCase priority, got %q", item.ProductID)
	}
}

func TestSnakeCaseFallback(t *testing.T) {
	item := normalizeLineItem(RawPayload{
		"product_id": "77",
		"variant_id": "red-m",
		"sale_price": 450.0,
	})
	if item.ProductID != "77" {
		t.Fatalf("expected snake_case fallback, got %q", item.ProductID)
	}
	if item.VariantID == nil || *item.VariantID != "red-m" {
		t.Fatalf("expected variant id, got %v", item.VariantID)
	}
	if item.LineID != "77:red-m" {
		t.Fatalf("unexpected line id %q", item.LineID)
	}
	if item.Price == nil || *item.Price != 450 {
		t.Fatalf("expected sale_price pickup, got %v", item.Price)
	}
}

func TestNumericIdentifiersCoerceToStrings(t *testing.T) {
	a := normalizeLineItem(RawPayload{"productId": 7})
	b := normalizeLineItem(RawPayload{"productId": "7"})
	c := normalizeLineItem(RawPayload{"productId": 7.0})

	if a.LineID != "7" || b.LineID != "7" || c.LineID != "7" {
		t.Fatalf("numeric and string ids must map to the same line: %q %q %q", a.LineID, b.LineID, c.LineID)
	}
}

func TestSalePricePreferredOldPriceOnlyWhenHigher(t *testing.T) {
	item := normalizeLineItem(RawPayload{
		"productId":    "1",
		"salePrice":    450.0,
		"regularPrice": 500.0,
	})
	if item.Price == nil || *item.Price != 450 {
		t.Fatalf("expected sale price, got %v", item.Price)
	}
	if item.OldPrice == nil || *item.OldPrice != 500 {
		t.Fatalf("expected old price 500, got %v", item.OldPrice)
	}

	// Equal regular price is not a markdown; no strikethrough.
	item = normalizeLineItem(RawPayload{
		"productId":    "1",
		"salePrice":    500.0,
		"regularPrice": 500.0,
	})
	if item.OldPrice != nil {
		t.Fatalf("expected no old price when not higher, got %v", item.OldPrice)
	}
}

func TestRegularPriceFallback(t *testing.T) {
	item := normalizeLineItem(RawPayload{"productId": "1", "price": 120.5})
	if item.Price == nil || *item.Price != 120.5 {
		t.Fatalf("expected plain price fallback, got %v", item.Price)
	}
	if item.OldPrice != nil {
		t.Fatalf("expected no old price, got %v", item.OldPrice)
	}
}

func TestInvalidNumericsCoerceToNil(t *testing.T) {
	item := normalizeLineItem(RawPayload{
		"productId": "1",
		"price":     "free?",
		"stock":     map[string]interface{}{},
	})
	if item.Price != nil {
		t.Fatalf("expected nil price, got %v", item.Price)
	}
	if item.Stock != nil {
		t.Fatalf("expected nil stock, got %v", item.Stock)
	}
}

func TestNumericStringsParse(t *testing.T) {
	item := normalizeLineItem(RawPayload{
		"productId": "1",
		"price":     "99.99",
		"stock":     "14",
	})
	if item.Price == nil || *item.Price != 99.99 {
		t.Fatalf("expected parsed price, got %v", item.Price)
	}
	if item.Stock == nil || *item.Stock != 14 {
		t.Fatalf("expected parsed stock, got %v", item.Stock)
	}
}

func TestVariantLabelDerivedFromAttrs(t *testing.T) {
	item := normalizeLineItem(RawPayload{
		"productId": "1",
		"attrs": map[string]interface{}{
			"Size":  "M",
			"Color": "Red",
		},
	})
	if item.VariantLabel != "Color: Red, Size: M" {
		t.Fatalf("unexpected label %q", item.VariantLabel)
	}
	if item.Attrs["Size"] != "M" || item.Attrs["Color"] != "Red" {
		t.Fatalf("unexpected attrs %v", item.Attrs)
	}
}

func TestExplicitVariantLabelWins(t *testing.T) {
	item := normalizeLineItem(RawPayload{
		"productId":    "1",
		"variantLabel": "Size: M, Color: Red",
		"attrs":        map[string]interface{}{"Size": "M"},
	})
	if item.VariantLabel != "Size: M, Color: Red" {
		t.Fatalf("unexpected label %q", item.VariantLabel)
	}
}

func TestImageFallsBackToFirstOfImages(t *testing.T) {
	item := normalizeLineItem(RawPayload{
		"productId": "1",
		"images":    []interface{}{"a.jpg", "b.jpg"},
	})
	if item.Image != "a.jpg" {
		t.Fatalf("unexpected image %q", item.Image)
	}
}
