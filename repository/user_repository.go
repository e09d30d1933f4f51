package repository

import (
	"gorm.io/gorm"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) List() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("id").Find(&users).Error
	return users, err
}

// UpdateRole sets role and, when restaurantID is non-nil, the restaurant
// binding in one update.
func (r *UserRepository) UpdateRole(userID uint, role string, restaurantID *uint) (int64, error) {
	updates := map[string]any{"role": role}
	if restaurantID != nil {
		updates["restaurant_id"] = *restaurantID
	}
	res := r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) AssignRestaurant(userID, restaurantID uint) (int64, error) {
	res := r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("restaurant_id", restaurantID)
	return res.RowsAffected, res.Error
}
