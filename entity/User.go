package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `gorm:"not null" json:"name"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// staff/admin belong to exactly one restaurant; customers get one
	// on their first order; superadmin never needs one.
	RestaurantID *uint       `json:"restaurantId"`
	Restaurant   *Restaurant `json:"-"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}
