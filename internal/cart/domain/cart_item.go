package domain

import "time"

// CartItem is one tour in a user's cart. A row starts pending and either
// gets deleted or transitions once to purchased; purchased rows are the
// user's order history.
type CartItem struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	TourName    string     `json:"tour_name" gorm:"not null"`
	TourPrice   float64    `json:"tour_price"`
	Purchased   bool       `json:"purchased" gorm:"default:false"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	AddedAt     time.Time  `json:"added_at"`
}

// TableName keeps the original storefront schema name
func (CartItem) TableName() string {
	return "user_cart"
}
