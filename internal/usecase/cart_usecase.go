package usecase

import (
	"sync"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/infrastructure/bus"

	"github.com/goccy/go-json"
)

// CartStore owns the client-side view of the cart, independent of any
// page: an in-memory CartState mirrored to the local document store on
// every transition. Persistence is fire-and-forget; the in-memory state
// stays authoritative for the session even when writes fail. The store
// performs no network I/O and every operation is synchronous.
type CartStore struct {
	mu     sync.Mutex
	store  domain.DocumentStore
	events *bus.Bus
	unsub  func()
	state  domain.CartState
}

// NewCartStore rehydrates from the local store (malformed or absent
// snapshot starts empty) and begins observing external store reloads.
func NewCartStore(store domain.DocumentStore, events *bus.Bus) *CartStore {
	s := &CartStore{
		store:  store,
		events: events,
		state:  domain.EmptyCart(),
	}
	s.rehydrate()
	if events != nil {
		s.unsub = events.Subscribe(domain.TopicStoreReloaded, func(string, interface{}) {
			s.Resync()
		})
	}
	return s
}

// Close detaches the store from the event bus.
func (s *CartStore) Close() {
	if s.unsub != nil {
		s.unsub()
	}
}

func (s *CartStore) rehydrate() {
	raw, ok := s.store.Get(domain.CartStoreKey)
	if !ok {
		return
	}
	var state domain.CartState
	if err := json.Unmarshal(raw, &state); err != nil || state.Items == nil {
		// Corrupt snapshot is the same as no snapshot.
		return
	}
	s.state = state
}

// AddItem normalizes the raw payload into a line item and merges it into
// the cart. An existing (productId, variantId) line accumulates quantity
// (clamped) and takes the fresh payload's display metadata; a new pair
// appends at the end. Always succeeds.
func (s *CartStore) AddItem(raw RawPayload, qty int) domain.CartState {
	incoming := normalizeLineItem(raw)

	s.mu.Lock()
	if idx := s.state.FindLine(incoming.LineID); idx >= 0 {
		incoming.Qty = domain.ClampQty(s.state.Items[idx].Qty + qty)
		s.state.Items[idx] = incoming
	} else {
		incoming.Qty = domain.ClampQty(qty)
		s.state.Items = append(s.state.Items, incoming)
	}
	snapshot := s.persistLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// RemoveItem drops the matching line. Unknown ids are a no-op.
func (s *CartStore) RemoveItem(lineID string) domain.CartState {
	s.mu.Lock()
	idx := s.state.FindLine(lineID)
	if idx < 0 {
		snapshot := s.state.Clone()
		s.mu.Unlock()
		return snapshot
	}
	s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
	snapshot := s.persistLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// SetQty sets the quantity for the matching line, clamped. Unknown ids
// are a no-op.
func (s *CartStore) SetQty(lineID string, qty int) domain.CartState {
	s.mu.Lock()
	idx := s.state.FindLine(lineID)
	if idx < 0 {
		snapshot := s.state.Clone()
		s.mu.Unlock()
		return snapshot
	}
	s.state.Items[idx].Qty = domain.ClampQty(qty)
	snapshot := s.persistLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// Clear resets the cart to empty, coupon included.
func (s *CartStore) Clear() domain.CartState {
	s.mu.Lock()
	s.state = domain.EmptyCart()
	snapshot := s.persistLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// ApplyCoupon attaches a coupon code. The code's legitimacy is checked
// remotely at checkout, not here.
func (s *CartStore) ApplyCoupon(code string) domain.CartState {
	s.mu.Lock()
	s.state.Coupon = &code
	snapshot := s.persistLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// RemoveCoupon clears the coupon.
func (s *CartStore) RemoveCoupon() domain.CartState {
	s.mu.Lock()
	s.state.Coupon = nil
	snapshot := s.persistLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// Snapshot returns a deep copy of the current state.
func (s *CartStore) Snapshot() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subtotal sums price*qty over priced lines.
func (s *CartStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Subtotal()
}

// Count returns the total quantity across lines.
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Count()
}

// Resync adopts whatever the local store currently holds. Called when
// another process rewrote the backing file; last writer wins.
func (s *CartStore) Resync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.EmptyCart()
	s.rehydrate()
}

// persistLocked writes the state to the local store and returns a deep
// copy for the caller. Write failures are logged by the store and
// otherwise ignored. Caller holds s.mu.
func (s *CartStore) persistLocked() domain.CartState {
	if raw, err := json.Marshal(s.state); err == nil {
		_ = s.store.Set(domain.CartStoreKey, raw)
	}
	return s.state.Clone()
}

// notify broadcasts a change outside the mutex so subscribers are free
// to read the store back during delivery.
func (s *CartStore) notify(snapshot domain.CartState) {
	if s.events != nil {
		s.events.Publish(domain.TopicCartChanged, snapshot)
	}
}
