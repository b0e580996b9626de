package usecase

import (
	"sort"
	"strconv"
	"strings"

	"storefront-gateway/internal/domain"
)

// RawPayload is a loosely-typed product or variant description as supplied
// by callers (already-fetched API objects, possibly in camelCase or
// snake_case). normalizeLineItem is the single adapter from this shape to
// the canonical CartLineItem; the canonical type itself stays strict.
type RawPayload map[string]interface{}

// Field lookup priority is camelCase first, then snake_case, per field.
func normalizeLineItem(raw RawPayload) domain.CartLineItem {
	productID := pickString(raw, "productId", "product_id", "id")
	variantID := pickStringPtr(raw, "variantId", "variant_id")

	item := domain.CartLineItem{
		LineID:    domain.MakeLineID(productID, variantID),
		ProductID: productID,
		VariantID: variantID,
		Name:      pickString(raw, "name", "title", "productName", "product_name"),
		Category:  pickString(raw, "category"),
		Image:     pickImage(raw),
		SKU:       pickStringPtr(raw, "sku"),
		Stock:     pickIntPtr(raw, "stock", "stock_quantity"),
		Attrs:     pickAttrs(raw),
	}

	// Sale price wins over regular price; the regular price is kept as
	// oldPrice only when it is actually higher (strikethrough display).
	sale := pickFloatPtr(raw, "salePrice", "sale_price")
	regular := pickFloatPtr(raw, "regularPrice", "regular_price", "price")
	switch {
	case sale != nil:
		item.Price = sale
		if regular != nil && *regular > *sale {
			item.OldPrice = regular
		}
	default:
		item.Price = regular
	}

	item.VariantLabel = pickString(raw, "variantLabel", "variant_label", "variantName", "variant_name")
	if item.VariantLabel == "" && len(item.Attrs) > 0 {
		item.VariantLabel = attrsLabel(item.Attrs)
	}

	return item
}

func pickString(raw RawPayload, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s := asString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func pickStringPtr(raw RawPayload, keys ...string) *string {
	if s := pickString(raw, keys...); s != "" {
		return &s
	}
	return nil
}

func pickFloatPtr(raw RawPayload, keys ...string) *float64 {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if f, ok := asFloat(v); ok {
				return &f
			}
		}
	}
	return nil
}

func pickIntPtr(raw RawPayload, keys ...string) *int {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if f, ok := asFloat(v); ok {
				n := int(f)
				return &n
			}
		}
	}
	return nil
}

func pickImage(raw RawPayload) string {
	if s := pickString(raw, "image", "thumbnail"); s != "" {
		return s
	}
	if v, ok := raw["images"]; ok {
		if list, ok := v.([]interface{}); ok && len(list) > 0 {
			return asString(list[0])
		}
	}
	return ""
}

func pickAttrs(raw RawPayload) map[string]string {
	for _, key := range []string{"attrs", "attributes"} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		m, ok := v.(map[string]interface{})
		if !ok || len(m) == 0 {
			continue
		}
		attrs := make(map[string]string, len(m))
		for k, val := range m {
			if s := asString(val); s != "" {
				attrs[k] = s
			}
		}
		if len(attrs) > 0 {
			return attrs
		}
	}
	return nil
}

func attrsLabel(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+attrs[k])
	}
	return strings.Join(parts, ", ")
}

// asString coerces identifiers that arrive as numbers or strings. Whole
// floats render without a decimal point so numeric ids stay stable.
func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// asFloat coerces numeric fields; anything non-numeric reports false and
// the caller falls back to nil rather than erroring.
func asFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
