package domain

// WishlistSnapshot is the persisted wishlist document: product ids in
// insertion order, no duplicates. Membership is the only semantic;
// order is kept for stable display.
type WishlistSnapshot struct {
	IDs []string
}

// Contains reports membership of a product id.
func (w WishlistSnapshot) Contains(productID string) bool {
	for _, id := range w.IDs {
		if id == productID {
			return true
		}
	}
	return false
}

// WithToggled returns a copy with the product id's membership flipped.
func (w WishlistSnapshot) WithToggled(productID string) WishlistSnapshot {
	out := WishlistSnapshot{IDs: make([]string, 0, len(w.IDs)+1)}
	removed := false
	for _, id := range w.IDs {
		if id == productID {
			removed = true
			continue
		}
		out.IDs = append(out.IDs, id)
	}
	if !removed {
		out.IDs = append(out.IDs, productID)
	}
	return out
}
