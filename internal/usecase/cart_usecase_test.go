package usecase

import (
	"errors"
	"testing"
	"time"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/infrastructure/bus"
)

// stubStore is an in-memory DocumentStore for store tests.
type stubStore struct {
	docs       map[string][]byte
	failWrites bool
}

func newStubStore() *stubStore {
	return &stubStore{docs: make(map[string][]byte)}
}

func (s *stubStore) Get(key string) ([]byte, bool) {
	doc, ok := s.docs[key]
	return doc, ok
}

func (s *stubStore) Set(key string, doc []byte) error {
	if s.failWrites {
		return errors.New("quota exceeded")
	}
	cp := make([]byte, len(doc))
	copy(cp, doc)
	s.docs[key] = cp
	return nil
}

func (s *stubStore) Delete(key string) error {
	delete(s.docs, key)
	return nil
}

func (s *stubStore) Clear() error {
	s.docs = make(map[string][]byte)
	return nil
}

func shirtPayload(price float64) RawPayload {
	return RawPayload{"productId": 7, "name": "Shirt", "price": price}
}

func TestAddItemMergesSameProductVariant(t *testing.T) {
	cart := NewCartStore(newStubStore(), nil)

	cart.AddItem(shirtPayload(500), 1)
	state := cart.AddItem(RawPayload{"productId": 7, "name": "Shirt v2", "price": 450}, 2)

	if len(state.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(state.Items))
	}
	line := state.Items[0]
	if line.Qty != 3 {
		t.Fatalf("expected qty 3, got %d", line.Qty)
	}
	// Latest metadata wins on merge.
	if line.Name != "Shirt v2" || line.Price == nil || *line.Price != 450 {
		t.Fatalf("expected refreshed metadata, got %+v", line)
	}
}

func TestAddItemDistinctVariantsGetSeparateLines(t *testing.T) {
	cart := NewCartStore(newStubStore(), nil)

	cart.AddItem(RawPayload{"productId": "7", "variantId": "m"}, 1)
	cart.AddItem(RawPayload{"productId": "7", "variantId": "l"}, 1)
	state := cart.AddItem(RawPayload{"productId": "7"}, 1)

	if len(state.Items) != 3 {
		t.Fatalf("expected three lines, got %d", len(state.Items))
	}
	// Insertion order is display order.
	if state.Items[0].LineID != "7:m" || state.Items[1].LineID != "7:l" || state.Items[2].LineID != "7" {
		t.Fatalf("unexpected order: %+v", state.Items)
	}
}

func TestQuantityClamping(t *testing.T) {
	tests := []struct {
		name string
		qtys []int
		want int
	}{
		{"zero becomes one", []int{0}, 1},
		{"negative becomes one", []int{-5}, 1},
		{"oversized caps at 99", []int{500}, 99},
		{"accumulation caps at 99", []int{50, 50}, 99},
		{"normal passes through", []int{7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCartStore(newStubStore(), nil)
			var state domain.CartState
			for _, q := range tt.qtys {
				state = cart.AddItem(shirtPayload(500), q)
			}
			if state.Items[0].Qty != tt.want {
				t.Fatalf("expected qty %d, got %d", tt.want, state.Items[0].Qty)
			}
		})
	}
}

func TestSetQtyClampsAndIgnoresUnknownLine(t *testing.T) {
	cart := NewCartStore(newStubStore(), nil)
	state := cart.AddItem(shirtPayload(500), 1)
	lineID := state.Items[0].LineID

	state = cart.SetQty(lineID, 200)
	if state.Items[0].Qty != 99 {
		t.Fatalf("expected clamp to 99, got %d", state.Items[0].Qty)
	}

	state = cart.SetQty("ghost", 5)
	if state.Items[0].Qty != 99 || len(state.Items) != 1 {
		t.Fatalf("unknown line must be a no-op, got %+v", state.Items)
	}
}

func TestRemoveItemRemovesExactlyMatchingLine(t *testing.T) {
	cart := NewCartStore(newStubStore(), nil)
	cart.AddItem(RawPayload{"productId": "1"}, 2)
	cart.AddItem(RawPayload{"productId": "2"}, 3)
	cart.AddItem(RawPayload{"productId": "3"}, 4)

	state := cart.RemoveItem("2")
	if len(state.Items) != 2 {
		t.Fatalf("expected two lines, got %d", len(state.Items))
	}
	if state.Items[0].LineID != "1" || state.Items[0].Qty != 2 ||
		state.Items[1].LineID != "3" || state.Items[1].Qty != 4 {
		t.Fatalf("other lines must be untouched: %+v", state.Items)
	}

	state = cart.RemoveItem("ghost")
	if len(state.Items) != 2 {
		t.Fatalf("removing unknown line must not change state, got %d lines", len(state.Items))
	}
}

func TestClearResetsItemsAndCoupon(t *testing.T) {
	cart := NewCartStore(newStubStore(), nil)
	cart.AddItem(shirtPayload(500), 1)
	cart.ApplyCoupon("SAVE10")

	state := cart.Clear()
	if len(state.Items) != 0 || state.Coupon != nil {
		t.Fatalf("expected empty cart after clear, got %+v", state)
	}
}

func TestCouponApplyAndRemove(t *testing.T) {
	cart := NewCartStore(newStubStore(), nil)

	state := cart.ApplyCoupon("WELCOME")
	if state.Coupon == nil || *state.Coupon != "WELCOME" {
		t.Fatalf("expected coupon set, got %+v", state.Coupon)
	}

	state = cart.RemoveCoupon()
	if state.Coupon != nil {
		t.Fatalf("expected coupon cleared, got %+v", state.Coupon)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := newStubStore()

	first := NewCartStore(store, nil)
	first.AddItem(RawPayload{"productId": 7, "variantId": "m", "name": "Shirt", "salePrice": 450, "regularPrice": 500}, 2)
	first.ApplyCoupon("SAVE10")
	want := first.Snapshot()

	// Fresh instance reading the same storage.
	second := NewCartStore(store, nil)
	got := second.Snapshot()

	if len(got.Items) != 1 {
		t.Fatalf("expected rehydrated line, got %d", len(got.Items))
	}
	a, b := want.Items[0], got.Items[0]
	if a.LineID != b.LineID || a.Qty != b.Qty || a.Name != b.Name ||
		*a.Price != *b.Price || *a.OldPrice != *b.OldPrice {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", a, b)
	}
	if got.Coupon == nil || *got.Coupon != "SAVE10" {
		t.Fatalf("expected coupon to survive reload, got %+v", got.Coupon)
	}
}

func TestMalformedSnapshotStartsEmpty(t *testing.T) {
	store := newStubStore()
	store.docs[domain.CartStoreKey] = []byte(`{"items": "not-a-list"`)

	cart := NewCartStore(store, nil)
	if state := cart.Snapshot(); len(state.Items) != 0 {
		t.Fatalf("corrupt snapshot must read as empty, got %+v", state)
	}
}

func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	store := newStubStore()
	store.failWrites = true

	cart := NewCartStore(store, nil)
	state := cart.AddItem(shirtPayload(500), 2)

	if len(state.Items) != 1 || state.Items[0].Qty != 2 {
		t.Fatalf("in-memory state must survive write failure, got %+v", state)
	}
}

func TestMutationsPublishCartChanged(t *testing.T) {
	events := bus.New()
	cart := NewCartStore(newStubStore(), events)
	defer cart.Close()

	var seen []domain.CartState
	events.Subscribe(domain.TopicCartChanged, func(_ string, payload interface{}) {
		seen = append(seen, payload.(domain.CartState))
	})

	cart.AddItem(shirtPayload(500), 1)
	cart.ApplyCoupon("X")
	cart.Clear()

	if len(seen) != 3 {
		t.Fatalf("expected three notifications, got %d", len(seen))
	}
	if len(seen[2].Items) != 0 {
		t.Fatalf("final notification must carry cleared state, got %+v", seen[2])
	}
}

func TestSubscriberMayReadCartDuringNotification(t *testing.T) {
	events := bus.New()
	cart := NewCartStore(newStubStore(), events)
	defer cart.Close()

	// Badge-style consumer: reads derived state back from the store
	// synchronously when notified.
	var count int
	unsub := events.Subscribe(domain.TopicCartChanged, func(string, interface{}) {
		count = cart.Count()
		_ = cart.Snapshot()
	})
	defer unsub()

	done := make(chan struct{})
	go func() {
		cart.AddItem(shirtPayload(500), 2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("AddItem blocked while notifying subscribers")
	}
	if count != 2 {
		t.Fatalf("expected subscriber to observe count 2, got %d", count)
	}
}

func TestSubtotalSkipsUnpricedLines(t *testing.T) {
	cart := NewCartStore(newStubStore(), nil)
	cart.AddItem(RawPayload{"productId": "1", "price": 100}, 2)
	cart.AddItem(RawPayload{"productId": "2", "price": "not-a-number"}, 5)

	if got := cart.Subtotal(); got != 200 {
		t.Fatalf("expected subtotal 200, got %v", got)
	}
	if got := cart.Count(); got != 7 {
		t.Fatalf("expected count 7, got %d", got)
	}
}

func TestEndToEndScenario(t *testing.T) {
	cart := NewCartStore(newStubStore(), nil)

	state := cart.AddItem(RawPayload{"productId": 7, "variantId": nil, "name": "Shirt", "price": 500}, 1)
	if len(state.Items) != 1 || state.Items[0].Qty != 1 || *state.Items[0].Price != 500 {
		t.Fatalf("step 1 mismatch: %+v", state.Items)
	}

	state = cart.AddItem(RawPayload{"productId": 7, "variantId": nil, "name": "Shirt", "price": 450}, 2)
	if len(state.Items) != 1 || state.Items[0].Qty != 3 || *state.Items[0].Price != 450 {
		t.Fatalf("step 2 mismatch: %+v", state.Items)
	}

	lineID := state.Items[0].LineID
	state = cart.SetQty(lineID, 200)
	if state.Items[0].Qty != 99 {
		t.Fatalf("step 3 mismatch: %+v", state.Items)
	}

	state = cart.RemoveItem(lineID)
	if len(state.Items) != 0 {
		t.Fatalf("step 4 mismatch: %+v", state.Items)
	}
}
