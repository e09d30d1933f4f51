package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
	"github.com/vaibhavmehta2503/Dine-Qr/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or each pooled conn gets its own :memory: database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.InventoryItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{Name: name}
	require.NoError(t, db.Create(rest).Error)
	return rest
}

func seedMenuItem(t *testing.T, db *gorm.DB, restID uint, name string, price int64) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{Name: name, Price: price, Available: true, RestaurantID: restID}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedOrder(t *testing.T, db *gorm.DB, o entity.Order) *entity.Order {
	t.Helper()
	if o.Code == "" {
		o.Code = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = entity.StatusPending
	}
	if o.OrderType == "" {
		o.OrderType = entity.OrderTypeDineIn
	}
	require.NoError(t, db.Create(&o).Error)
	return &o
}

func seedInventoryItem(t *testing.T, db *gorm.DB, restID uint, name string, qty int, expiry time.Time) *entity.InventoryItem {
	t.Helper()
	item := &entity.InventoryItem{
		Name: name, Quantity: qty, Unit: "pcs",
		ExpiryDate: expiry, RestaurantID: restID,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func staffIdentity(restID uint) identity.Identity {
	return identity.Identity{
		Authenticated: true,
		UserID:        100,
		Email:         "staff@example.com",
		Role:          identity.RoleStaff,
		RestaurantID:  restID,
	}
}

func adminIdentity(restID uint) identity.Identity {
	return identity.Identity{
		Authenticated: true,
		UserID:        101,
		Email:         "admin@example.com",
		Role:          identity.RoleAdmin,
		RestaurantID:  restID,
	}
}

func customerIdentity(userID uint, email string) identity.Identity {
	return identity.Identity{
		Authenticated: true,
		UserID:        userID,
		Email:         email,
		Role:          identity.RoleCustomer,
	}
}
