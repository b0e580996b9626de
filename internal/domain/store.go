package domain

// Keys under which the gateway persists its documents in the local store.
const (
	CartStoreKey     = "storefront:cart"
	WishlistStoreKey = "storefront:wishlist"
	SessionStoreKey  = "storefront:session"
)

// DocumentStore is the local persistence substrate: namespaced keys to raw
// JSON documents. Reads and writes are synchronous. A missing key and a
// corrupt backing file look identical to callers (not found).
type DocumentStore interface {
	// Get returns the raw document and true if the key exists.
	Get(key string) ([]byte, bool)

	// Set writes the raw document for a key.
	Set(key string, doc []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error

	// Clear removes all keys.
	Clear() error
}
