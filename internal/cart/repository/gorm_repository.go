package repository

import (
	"time"

	cartdomain "tourback/internal/cart/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCartRepository implements CartRepository using GORM
type gormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new GORM-based CartRepository
func NewCartRepository(db *gorm.DB) CartRepository {
	return &gormCartRepository{db: db}
}

func (r *gormCartRepository) Create(item *cartdomain.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.Purchased = false
	item.AddedAt = time.Now()
	return r.db.Create(item).Error
}

func (r *gormCartRepository) FindByUser(userID string, purchased bool) ([]*cartdomain.CartItem, error) {
	var items []*cartdomain.CartItem
	err := r.db.Where("user_id = ? AND purchased = ?", userID, purchased).
		Order("added_at ASC").
		Find(&items).Error
	return items, err
}

func (r *gormCartRepository) DeletePending(userID, itemID string) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ? AND purchased = ?", itemID, userID, false).
		Delete(&cartdomain.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *gormCartRepository) MarkPurchased(userID, itemID string, purchasedAt time.Time) (int64, error) {
	res := r.db.Model(&cartdomain.CartItem{}).
		Where("id = ? AND user_id = ? AND purchased = ?", itemID, userID, false).
		Updates(map[string]interface{}{
			"purchased":    true,
			"purchased_at": purchasedAt,
		})
	return res.RowsAffected, res.Error
}
