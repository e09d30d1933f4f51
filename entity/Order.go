package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Code is the opaque tracking handle handed to QR guests.
	Code string `gorm:"uniqueIndex;not null" json:"code"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderType       string `gorm:"not null;default:dine-in" json:"orderType"`
	TableNumber     string `json:"tableNumber"`
	DeliveryAddress string `json:"deliveryAddress"`

	// Attribution: at least one of CustomerID/CustomerEmail or
	// guest name+table must be present, or nobody but staff can
	// ever read the order back.
	CustomerID    *uint  `json:"customerId"`
	Customer      *User  `gorm:"foreignKey:CustomerID" json:"-"`
	CustomerEmail string `gorm:"index" json:"customerEmail"`
	CustomerName  string `json:"customerName"`

	Status string `gorm:"not null;default:pending" json:"status"`
	Total  int64  `json:"total"` // client-computed, persisted as given

	Items []OrderItem `json:"items"`
}
