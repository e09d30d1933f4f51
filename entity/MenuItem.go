package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Price       int64  `gorm:"not null" json:"price"` // satang/cents
	Available   bool   `gorm:"default:true" json:"available"`
	Description string `json:"description"`
	Image       string `json:"image"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
