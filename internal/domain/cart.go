package domain

// Line quantities are clamped to this range on every mutation.
const (
	MinLineQty = 1
	MaxLineQty = 99
)

// CartLineItem is one purchasable line in the cart. A line is uniquely
// identified by its (productId, variantId) pair; the LineID is derived
// from that pair so repeated adds merge instead of duplicating.
type CartLineItem struct {
	LineID       string            `json:"lineId"`
	ProductID    string            `json:"productId"`
	VariantID    *string           `json:"variantId"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	VariantLabel string            `json:"variantLabel"`
	Image        string            `json:"image"`
	SKU          *string           `json:"sku"`
	Price        *float64          `json:"price"`
	OldPrice     *float64          `json:"oldPrice"`
	Stock        *int              `json:"stock"`
	Attrs        map[string]string `json:"attrs"`
	Qty          int               `json:"qty"`
}

// CartState is the full persisted cart document. Items keep insertion
// order, which is also display order.
type CartState struct {
	Items  []CartLineItem `json:"items"`
	Coupon *string        `json:"coupon"`
}

// EmptyCart returns a fresh cart state.
func EmptyCart() CartState {
	return CartState{Items: []CartLineItem{}, Coupon: nil}
}

// MakeLineID derives the deterministic line key for a product/variant pair.
func MakeLineID(productID string, variantID *string) string {
	if variantID == nil || *variantID == "" {
		return productID
	}
	return productID + ":" + *variantID
}

// ClampQty bounds a requested quantity to the allowed range.
func ClampQty(qty int) int {
	if qty < MinLineQty {
		return MinLineQty
	}
	if qty > MaxLineQty {
		return MaxLineQty
	}
	return qty
}

// Clone returns a deep copy of the cart state so callers can hand out
// snapshots without exposing internal slices or maps.
func (s CartState) Clone() CartState {
	out := CartState{Items: make([]CartLineItem, len(s.Items))}
	copy(out.Items, s.Items)
	for i, item := range s.Items {
		if item.Attrs != nil {
			attrs := make(map[string]string, len(item.Attrs))
			for k, v := range item.Attrs {
				attrs[k] = v
			}
			out.Items[i].Attrs = attrs
		}
	}
	if s.Coupon != nil {
		c := *s.Coupon
		out.Coupon = &c
	}
	return out
}

// FindLine returns the index of the line with the given id, or -1.
func (s CartState) FindLine(lineID string) int {
	for i, item := range s.Items {
		if item.LineID == lineID {
			return i
		}
	}
	return -1
}

// Subtotal sums price*qty over lines with a known price. Shipping,
// discounts and totals are computed elsewhere.
func (s CartState) Subtotal() float64 {
	var sum float64
	for _, item := range s.Items {
		if item.Price != nil {
			sum += *item.Price * float64(item.Qty)
		}
	}
	return sum
}

// Count returns the total quantity across all lines.
func (s CartState) Count() int {
	var n int
	for _, item := range s.Items {
		n += item.Qty
	}
	return n
}
