package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
	"github.com/vaibhavmehta2503/Dine-Qr/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	restRepo *repository.RestaurantRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, RestRepo: restRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	RestaurantID    uint          `json:"restaurantId"`
	Items           []OrderItemIn `json:"items" binding:"required,min=1"`
	OrderType       string        `json:"orderType"`
	TableNumber     string        `json:"tableNumber"`
	DeliveryAddress string        `json:"deliveryAddress"`
	CustomerName    string        `json:"customerName"`
	Status          string        `json:"status"`
	Total           int64         `json:"total"`
}

type UpdateOrderReq struct {
	Status          *string `json:"status"`
	TableNumber     *string `json:"tableNumber"`
	DeliveryAddress *string `json:"deliveryAddress"`
	CustomerName    *string `json:"customerName"`
	Total           *int64  `json:"total"`
}

// ----- Create -----

// Create persists a new order for any caller, authenticated or not. The
// restaurant comes from the tenant guard, the attribution comes from the
// identity or the guest fields, and at least one attribution channel must
// exist or the order would be unreadable to its own creator.
func (s *OrderService) Create(id identity.Identity, req *CreateOrderReq) (*entity.Order, error) {
	restID, err := ResolveTenant(id, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, storageErr(err)
	}
	if !ok {
		return nil, badRequestf("restaurant not found")
	}

	orderType := req.OrderType
	if orderType == "" {
		orderType = entity.OrderTypeDineIn
	}
	if !entity.KnownOrderType(orderType) {
		return nil, badRequestf("unknown order type %q", orderType)
	}
	if orderType == entity.OrderTypeDineIn && req.TableNumber == "" {
		return nil, badRequestf("dine-in order requires a table number")
	}
	if orderType == entity.OrderTypeDelivery && req.DeliveryAddress == "" {
		return nil, badRequestf("delivery order requires a delivery address")
	}

	if len(req.Items) == 0 {
		return nil, badRequestf("items is required")
	}
	seen := make(map[uint]bool, len(req.Items))
	menuIDs := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, badRequestf("item quantity must be at least 1")
		}
		if !seen[it.MenuItemID] {
			seen[it.MenuItemID] = true
			menuIDs = append(menuIDs, it.MenuItemID)
		}
	}
	ok, err = s.MenuRepo.AllBelongToRestaurant(menuIDs, restID)
	if err != nil {
		return nil, storageErr(err)
	}
	if !ok {
		return nil, badRequestf("menu item not in this restaurant")
	}

	status := req.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !entity.KnownStatus(status) {
		return nil, badRequestf("unknown status %q", status)
	}

	if !s.hasAttribution(id, req, orderType) {
		return nil, badRequestf("order needs a customer: sign in, or give a name and table, or a delivery address")
	}

	order := entity.Order{
		Code:            uuid.NewString(),
		RestaurantID:    restID,
		OrderType:       orderType,
		TableNumber:     req.TableNumber,
		DeliveryAddress: req.DeliveryAddress,
		CustomerName:    req.CustomerName,
		Status:          status,
		Total:           req.Total,
	}
	if id.Authenticated {
		uid := id.UserID
		order.CustomerID = &uid
		order.CustomerEmail = id.Email
		if order.CustomerName == "" {
			order.CustomerName = id.Name
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range req.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return &order, nil
}

func (s *OrderService) hasAttribution(id identity.Identity, req *CreateOrderReq, orderType string) bool {
	if id.Authenticated && (id.UserID != 0 || id.Email != "") {
		return true
	}
	if req.CustomerName != "" && req.TableNumber != "" {
		return true
	}
	if orderType == entity.OrderTypeDelivery && req.DeliveryAddress != "" {
		return true
	}
	return false
}

// ----- Read -----

func (s *OrderService) List(id identity.Identity, explicitRestID uint) ([]entity.Order, error) {
	restID, err := ResolveTenant(id, explicitRestID)
	if err != nil {
		return nil, err
	}
	filter, err := ResolveOrderFilter(id)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.List(restID, filter)
	if err != nil {
		return nil, storageErr(err)
	}
	return orders, nil
}

func (s *OrderService) MyOrders(id identity.Identity, explicitRestID uint) ([]entity.Order, error) {
	restID, err := ResolveTenant(id, explicitRestID)
	if err != nil {
		return nil, err
	}
	filter, err := ResolveMyOrdersFilter(id)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.List(restID, filter)
	if err != nil {
		return nil, storageErr(err)
	}
	return orders, nil
}

// TrackByCode returns one order by its opaque tracking code. The code is
// unguessable, so no tenant scoping is needed for this read.
func (s *OrderService) TrackByCode(code string) (*entity.Order, error) {
	o, err := s.Repo.FindByCode(code)
	if err != nil {
		return nil, storageErr(err)
	}
	return o, nil
}

// ----- Update / Delete (staff and admin only) -----

func (s *OrderService) staffScope(id identity.Identity) (uint, error) {
	if !id.IsStaff() {
		return 0, ErrForbidden
	}
	if id.RestaurantID == 0 {
		return 0, ErrMissingTenant
	}
	return id.RestaurantID, nil
}

// Update mutates an order inside the caller's own restaurant. A status
// change must be a single forward step of the lifecycle; other fields are
// last-write-wins. An id that exists only in another restaurant comes
// back as not-found, the same as one that does not exist at all.
func (s *OrderService) Update(id identity.Identity, orderID uint, req *UpdateOrderReq) (*entity.Order, error) {
	restID, err := s.staffScope(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.TableNumber != nil {
		updates["table_number"] = *req.TableNumber
	}
	if req.DeliveryAddress != nil {
		updates["delivery_address"] = *req.DeliveryAddress
	}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.Total != nil {
		updates["total"] = *req.Total
	}
	if len(updates) == 0 && req.Status == nil {
		return nil, badRequestf("no fields to update")
	}

	if req.Status != nil {
		if !entity.KnownStatus(*req.Status) {
			return nil, badRequestf("unknown status %q", *req.Status)
		}
		cur, err := s.Repo.GetScoped(orderID, restID)
		if err != nil {
			return nil, storageErr(err)
		}
		if !entity.CanTransition(cur.Status, *req.Status) {
			return nil, badRequestf("cannot move order from %s to %s", cur.Status, *req.Status)
		}
		affected, err := s.Repo.UpdateStatusGuard(orderID, restID, cur.Status, *req.Status)
		if err != nil {
			return nil, storageErr(err)
		}
		if affected == 0 {
			return nil, badRequestf("order status changed concurrently")
		}
	}

	if len(updates) > 0 {
		affected, err := s.Repo.UpdateScoped(orderID, restID, updates)
		if err != nil {
			return nil, storageErr(err)
		}
		if affected == 0 {
			return nil, ErrNotFound
		}
	}

	o, err := s.Repo.GetScoped(orderID, restID)
	if err != nil {
		return nil, storageErr(err)
	}
	return o, nil
}

func (s *OrderService) Delete(id identity.Identity, orderID uint) error {
	restID, err := s.staffScope(id)
	if err != nil {
		return err
	}
	affected, err := s.Repo.DeleteScoped(orderID, restID)
	if err != nil {
		return storageErr(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
