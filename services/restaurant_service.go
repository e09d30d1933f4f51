package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
	"github.com/vaibhavmehta2503/Dine-Qr/repository"
)

type RestaurantService struct {
	DB   *gorm.DB
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo}
}

type CreateRestaurantReq struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Logo    string `json:"logo"`
	AdminID uint   `json:"adminId" binding:"required"`
}

// Create provisions a restaurant and binds the named admin account to it
// in one transaction, so a half-provisioned tenant never exists.
func (s *RestaurantService) Create(caller identity.Identity, req *CreateRestaurantReq) (*entity.Restaurant, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	rest := entity.Restaurant{Name: req.Name, Address: req.Address, Logo: req.Logo}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &rest); err != nil {
			return err
		}
		res := tx.Model(&entity.User{}).Where("id = ?", req.AdminID).
			Update("restaurant_id", rest.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr(err)
	}
	return &rest, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, storageErr(err)
	}
	return rest, nil
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	rests, err := s.Repo.List()
	if err != nil {
		return nil, storageErr(err)
	}
	return rests, nil
}
