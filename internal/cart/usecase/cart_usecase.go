package usecase

import (
	"time"

	cartdomain "tourback/internal/cart/domain"
	"tourback/internal/cart/repository"
)

// cartUsecase implements CartUsecase interface
type cartUsecase struct {
	cartRepo repository.CartRepository
	location *time.Location
}

// NewCartUsecase creates a new instance of cartUsecase. Purchase timestamps
// are recorded in the storefront's local timezone (Asia/Taipei).
func NewCartUsecase(cartRepo repository.CartRepository) CartUsecase {
	location, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		location = time.FixedZone("Asia/Taipei", 8*60*60)
	}
	return &cartUsecase{
		cartRepo: cartRepo,
		location: location,
	}
}

func (u *cartUsecase) AddItem(userID, tourName string, tourPrice float64) (*cartdomain.CartItem, error) {
	item := &cartdomain.CartItem{
		UserID:    userID,
		TourName:  tourName,
		TourPrice: tourPrice,
	}

	if err := u.cartRepo.Create(item); err != nil {
		return nil, err
	}

	return item, nil
}

func (u *cartUsecase) ListItems(userID string, purchased bool) ([]*cartdomain.CartItem, error) {
	items, err := u.cartRepo.FindByUser(userID, purchased)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []*cartdomain.CartItem{}
	}
	return items, nil
}

func (u *cartUsecase) RemoveItem(userID, itemID string) error {
	deleted, err := u.cartRepo.DeletePending(userID, itemID)
	if err != nil {
		return err
	}

	if deleted == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (u *cartUsecase) Checkout(userID, itemID string) (time.Time, error) {
	purchasedAt := time.Now().In(u.location)

	updated, err := u.cartRepo.MarkPurchased(userID, itemID, purchasedAt)
	if err != nil {
		return time.Time{}, err
	}

	if updated == 0 {
		return time.Time{}, ErrItemNotFound
	}
	return purchasedAt, nil
}
