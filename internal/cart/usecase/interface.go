package usecase

import (
	"errors"
	"time"

	cartdomain "tourback/internal/cart/domain"
)

// ErrItemNotFound is returned for any cart item the caller cannot act on:
// missing, owned by someone else, or already purchased. Collapsing the three
// avoids leaking row existence to non-owners.
var ErrItemNotFound = errors.New("item not found or already purchased")

// CartUsecase owns the cart item lifecycle
type CartUsecase interface {
	// AddItem puts a tour into the user's cart
	AddItem(userID, tourName string, tourPrice float64) (*cartdomain.CartItem, error)

	// ListItems returns the user's pending cart or purchase history
	ListItems(userID string, purchased bool) ([]*cartdomain.CartItem, error)

	// RemoveItem deletes a pending item from the user's cart
	RemoveItem(userID, itemID string) error

	// Checkout marks a pending item purchased and returns the purchase time
	Checkout(userID, itemID string) (time.Time, error)
}
