package repository

import (
	"gorm.io/gorm"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ListForRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restID).Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// UpdateScoped touches the row only when it belongs to restID; zero rows
// means absent or another tenant's, indistinguishably.
func (r *MenuRepository) UpdateScoped(itemID, restID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND restaurant_id = ?", itemID, restID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) DeleteScoped(itemID, restID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restID).
		Delete(&entity.MenuItem{})
	return res.RowsAffected, res.Error
}

// AllBelongToRestaurant checks that every menu item id exists under restID.
func (r *MenuRepository) AllBelongToRestaurant(itemIDs []uint, restID uint) (bool, error) {
	if len(itemIDs) == 0 {
		return true, nil
	}
	var count int64
	if err := r.DB.Model(&entity.MenuItem{}).
		Where("id IN ? AND restaurant_id = ?", itemIDs, restID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count == int64(len(itemIDs)), nil
}
