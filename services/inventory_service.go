package services

import (
	"time"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
	"github.com/vaibhavmehta2503/Dine-Qr/repository"
)

type InventoryService struct {
	Repo *repository.InventoryRepository
}

func NewInventoryService(repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{Repo: repo}
}

type CreateInventoryItemReq struct {
	Name       string    `json:"name" binding:"required"`
	Quantity   int       `json:"quantity" binding:"min=0"`
	Unit       string    `json:"unit"`
	ExpiryDate time.Time `json:"expiryDate" binding:"required"`
}

type UpdateInventoryItemReq struct {
	Name       *string    `json:"name"`
	Quantity   *int       `json:"quantity"`
	Unit       *string    `json:"unit"`
	ExpiryDate *time.Time `json:"expiryDate"`
}

// ExpiringItem is an inventory item plus its proximity classification,
// shared verbatim between the scoped endpoint and the scheduled scan.
type ExpiringItem struct {
	entity.InventoryItem
	DaysLeft int `json:"daysLeft"`
}

func (s *InventoryService) staffScope(id identity.Identity) (uint, error) {
	if !id.IsStaff() {
		return 0, ErrForbidden
	}
	if id.RestaurantID == 0 {
		return 0, ErrMissingTenant
	}
	return id.RestaurantID, nil
}

func (s *InventoryService) List(id identity.Identity) ([]entity.InventoryItem, error) {
	restID, err := s.staffScope(id)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListForRestaurant(restID)
	if err != nil {
		return nil, storageErr(err)
	}
	return items, nil
}

func (s *InventoryService) Create(id identity.Identity, req *CreateInventoryItemReq) (*entity.InventoryItem, error) {
	restID, err := s.staffScope(id)
	if err != nil {
		return nil, err
	}
	if req.Quantity < 0 {
		return nil, badRequestf("quantity must be non-negative")
	}
	item := entity.InventoryItem{
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ExpiryDate:   req.ExpiryDate,
		RestaurantID: restID,
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, storageErr(err)
	}
	return &item, nil
}

func (s *InventoryService) Update(id identity.Identity, itemID uint, req *UpdateInventoryItemReq) (*entity.InventoryItem, error) {
	restID, err := s.staffScope(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, badRequestf("quantity must be non-negative")
		}
		updates["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.ExpiryDate != nil {
		updates["expiry_date"] = *req.ExpiryDate
	}
	if len(updates) == 0 {
		return nil, badRequestf("no fields to update")
	}

	affected, err := s.Repo.UpdateScoped(itemID, restID, updates)
	if err != nil {
		return nil, storageErr(err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	item, err := s.Repo.GetScoped(itemID, restID)
	if err != nil {
		return nil, storageErr(err)
	}
	return item, nil
}

func (s *InventoryService) Delete(id identity.Identity, itemID uint) error {
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

// ListExpiring returns the caller's restaurant's stocked items expiring
// within the alert window, classified by days left.
func (s *InventoryService) ListExpiring(id identity.Identity) ([]ExpiringItem, error) {
	restID, err := s.staffScope(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items, err := s.Repo.ListExpiring(&restID, ExpiryCutoff(now))
	if err != nil {
		return nil, storageErr(err)
	}
	return ClassifyExpiring(items, now), nil
}
