package repository

import (
	"gorm.io/gorm"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// OrderFilter narrows a restaurant's order list to what one caller may
// see. Exactly one of the modes is set by the visibility resolver.
type OrderFilter struct {
	All           bool
	CustomerID    uint
	CustomerEmail string
	TableNumber   string
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// List returns the restaurant's orders matching the filter. No ordering
// is promised to callers; id DESC is an implementation detail.
func (r *OrderRepository) List(restID uint, f OrderFilter) ([]entity.Order, error) {
	q := r.DB.Preload("Items").Preload("Items.MenuItem").
		Where("restaurant_id = ?", restID)
	switch {
	case f.All:
		// no further filter
	case f.CustomerID != 0:
		q = q.Where("customer_id = ?", f.CustomerID)
	case f.CustomerEmail != "":
		q = q.Where("customer_email = ?", f.CustomerEmail)
	case f.TableNumber != "":
		q = q.Where("table_number = ?", f.TableNumber)
	default:
		return []entity.Order{}, nil
	}

	var orders []entity.Order
	err := q.Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetScoped(orderID, restID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").
		Where("id = ? AND restaurant_id = ?", orderID, restID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByCode(code string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("code = ?", code).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateScoped applies updates only within restID. Zero rows affected is
// reported to the caller as not-found regardless of why.
func (r *OrderRepository) UpdateScoped(orderID, restID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND restaurant_id = ?", orderID, restID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// UpdateStatusGuard advances status only from the expected current value,
// so concurrent staff updates cannot skip or repeat a step.
func (r *OrderRepository) UpdateStatusGuard(orderID, restID uint, from, to string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND restaurant_id = ? AND status = ?", orderID, restID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteScoped(orderID, restID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).
		Delete(&entity.Order{})
	return res.RowsAffected, res.Error
}
