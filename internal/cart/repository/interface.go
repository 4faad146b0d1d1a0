package repository

import (
	"time"

	cartdomain "tourback/internal/cart/domain"
)

// CartRepository defines the interface for cart data access. Every query is
// scoped by the owning user ID; ownership is never checked separately from
// the row lookup.
type CartRepository interface {
	// Create inserts a new pending cart item, assigning its ID and added
	// time
	Create(item *cartdomain.CartItem) error

	// FindByUser returns the user's items with the given purchased flag,
	// oldest first
	FindByUser(userID string, purchased bool) ([]*cartdomain.CartItem, error)

	// DeletePending deletes the item only if it is owned by userID and
	// still pending; returns the number of rows removed (0 or 1)
	DeletePending(userID, itemID string) (int64, error)

	// MarkPurchased flips the item to purchased with the given timestamp,
	// only if it is owned by userID and still pending; returns the number
	// of rows updated (0 or 1)
	MarkPurchased(userID, itemID string, purchasedAt time.Time) (int64, error)
}
