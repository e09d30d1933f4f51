package entity

import (
	"time"

	"gorm.io/gorm"
)

type InventoryItem struct {
	gorm.Model
	Name       string    `gorm:"not null" json:"name"`
	Quantity   int       `gorm:"not null;default:0" json:"quantity"`
	Unit       string    `json:"unit"`
	ExpiryDate time.Time `gorm:"index" json:"expiryDate"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
