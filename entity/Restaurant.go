package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Logo    string `json:"logo"`

	MenuItems      []MenuItem      `json:"-"`
	Orders         []Order         `json:"-"`
	InventoryItems []InventoryItem `json:"-"`
}
