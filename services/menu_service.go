package services

import (
	"github.com/vaibhavmehta2503/Dine-Qr/entity"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
	"github.com/vaibhavmehta2503/Dine-Qr/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type CreateMenuItemReq struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	Available   *bool  `json:"available"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type UpdateMenuItemReq struct {
	Name        *string `json:"name"`
	Price       *int64  `json:"price"`
	Available   *bool   `json:"available"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// List is the public menu view: QR guests supply the restaurant id, staff
// browse their own restaurant without one.
func (s *MenuService) List(id identity.Identity, explicitRestID uint) ([]entity.MenuItem, error) {
	restID, err := ResolveTenant(id, explicitRestID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListForRestaurant(restID)
	if err != nil {
		return nil, storageErr(err)
	}
	return items, nil
}

func (s *MenuService) staffScope(id identity.Identity) (uint, error) {
	if !id.IsStaff() {
		return 0, ErrForbidden
	}
	if id.RestaurantID == 0 {
		return 0, ErrMissingTenant
	}
	return id.RestaurantID, nil
}

func (s *MenuService) Create(id identity.Identity, req *CreateMenuItemReq) (*entity.MenuItem, error) {
	restID, err := s.staffScope(id)
	if err != nil {
		return nil, err
	}
	if req.Price < 0 {
		return nil, badRequestf("price must be non-negative")
	}
	item := entity.MenuItem{
		Name:         req.Name,
		Price:        req.Price,
		Available:    true,
		Description:  req.Description,
		Image:        req.Image,
		RestaurantID: restID,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, storageErr(err)
	}
	return &item, nil
}

func (s *MenuService) Update(id identity.Identity, itemID uint, req *UpdateMenuItemReq) error {
	restID, err := s.staffScope(id)
	if err != nil {
		return err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return badRequestf("price must be non-negative")
		}
		updates["price"] = *req.Price
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if len(updates) == 0 {
		return badRequestf("no fields to update")
	}

	affected, err := s.Repo.UpdateScoped(itemID, restID, updates)
	if err != nil {
		return storageErr(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuService) Delete(id identity.Identity, itemID uint) error {
	restID, err := s.staffScope(id)
	if err != nil {
		return err
	}
	affected, err := s.Repo.DeleteScoped(itemID, restID)
	if err != nil {
		return storageErr(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
