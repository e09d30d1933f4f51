package repository

import (
	"gorm.io/gorm"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Order("id").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
