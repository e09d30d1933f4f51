package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) ListForRestaurant(restID uint) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.DB.Where("restaurant_id = ?", restID).Order("id").Find(&items).Error
	return items, err
}

func (r *InventoryRepository) Create(item *entity.InventoryItem) error {
	return r.DB.Create(item).Error
}

func (r *InventoryRepository) UpdateScoped(itemID, restID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.InventoryItem{}).
		Where("id = ? AND restaurant_id = ?", itemID, restID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *InventoryRepository) GetScoped(itemID, restID uint) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	if err := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) DeleteScoped(itemID, restID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restID).
		Delete(&entity.InventoryItem{})
	return res.RowsAffected, res.Error
}

// ListExpiring is the single query behind both the scoped endpoint and the
// global scheduled scan: stocked items whose expiry falls on or before the
// cutoff. restID nil means all restaurants.
func (r *InventoryRepository) ListExpiring(restID *uint, cutoff time.Time) ([]entity.InventoryItem, error) {
	q := r.DB.Where("quantity > 0 AND expiry_date <= ?", cutoff)
	if restID != nil {
		q = q.Where("restaurant_id = ?", *restID)
	}
	var items []entity.InventoryItem
	err := q.Order("expiry_date").Find(&items).Error
	return items, err
}
