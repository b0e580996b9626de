package domain

// Topics published on the in-process event bus. Every store mutation is
// broadcast so independently mounted consumers (badge endpoints, pages)
// observe changes without re-reading on their own schedule.
const (
	TopicCartChanged     = "cart.changed"
	TopicWishlistChanged = "wishlist.changed"
	TopicStoreReloaded   = "store.reloaded"
)

// Publisher is the write side of the event bus.
type Publisher interface {
	Publish(topic string, payload interface{})
}
