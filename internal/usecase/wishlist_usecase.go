package usecase

import (
	"sync"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/infrastructure/bus"

	"github.com/goccy/go-json"
)

// WishlistStore maintains the set of liked product ids. The source of
// truth is the local document store, not this instance: Toggle re-reads
// the persisted set fresh before flipping membership, and every mounted
// instance re-syncs on the change notification. Multiple instances over
// the same store therefore converge without a central owner.
type WishlistStore struct {
	mu     sync.Mutex
	store  domain.DocumentStore
	events *bus.Bus
	unsubs []func()
	ids    []string
}

// NewWishlistStore loads the persisted set (parse failure reads as empty)
// and subscribes to change and reload notifications until Close.
func NewWishlistStore(store domain.DocumentStore, events *bus.Bus) *WishlistStore {
	s := &WishlistStore{store: store, events: events}
	s.mu.Lock()
	s.ids = s.readPersisted()
	s.mu.Unlock()

	if events != nil {
		resync := func(string, interface{}) { s.Resync() }
		s.unsubs = append(s.unsubs,
			events.Subscribe(domain.TopicWishlistChanged, resync),
			events.Subscribe(domain.TopicStoreReloaded, resync),
		)
	}
	return s
}

// Close unsubscribes this instance from the event bus.
func (s *WishlistStore) Close() {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
}

// Toggle flips membership of a product id against the freshly persisted
// set, writes the result back and broadcasts the change. Returns true
// when the product is wishlisted after the toggle.
func (s *WishlistStore) Toggle(productID string) bool {
	s.mu.Lock()
	snapshot := domain.WishlistSnapshot{IDs: s.readPersisted()}
	next := snapshot.WithToggled(productID)

	if raw, err := json.Marshal(next.IDs); err == nil {
		_ = s.store.Set(domain.WishlistStoreKey, raw)
	}
	s.ids = next.IDs
	s.mu.Unlock()

	if s.events != nil {
		s.events.Publish(domain.TopicWishlistChanged, productID)
	}
	return next.Contains(productID)
}

// IsWishlisted is a pure membership test against the in-memory snapshot.
func (s *WishlistStore) IsWishlisted(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.WishlistSnapshot{IDs: s.ids}.Contains(productID)
}

// IDs returns a copy of the current snapshot in insertion order.
func (s *WishlistStore) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count returns the number of wishlisted products.
func (s *WishlistStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Resync re-reads the persisted set into the in-memory snapshot.
func (s *WishlistStore) Resync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = s.readPersisted()
}

func (s *WishlistStore) readPersisted() []string {
	raw, ok := s.store.Get(domain.WishlistStoreKey)
	if !ok {
		return nil
	}
	// Ids may be stored as numbers or strings by older writers; accept both.
	var loose []interface{}
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil
	}
	ids := make([]string, 0, len(loose))
	for _, v := range loose {
		if id := asString(v); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
