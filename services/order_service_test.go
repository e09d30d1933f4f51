package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
)

func TestOrderCreate_GuestDineIn(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	m1 := seedMenuItem(t, db, r1.ID, "Pad Thai", 9000)

	order, err := svc.Create(identity.Guest("5"), &CreateOrderReq{
		RestaurantID: r1.ID,
		Items:        []OrderItemIn{{MenuItemID: m1.ID, Quantity: 2}},
		OrderType:    entity.OrderTypeDineIn,
		TableNumber:  "5",
		CustomerName: "Walk-in",
		Total:        18000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, r1.ID, order.RestaurantID)
	assert.NotEmpty(t, order.Code)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestOrderCreate_Validation(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	r2 := seedRestaurant(t, db, "R2")
	m1 := seedMenuItem(t, db, r1.ID, "Green Curry", 12000)
	m2 := seedMenuItem(t, db, r2.ID, "Foreign Dish", 5000)

	items := []OrderItemIn{{MenuItemID: m1.ID, Quantity: 1}}

	tests := []struct {
		name    string
		id      identity.Identity
		req     CreateOrderReq
		wantErr error
	}{
		{
			name:    "no restaurant anywhere",
			id:      identity.Guest(""),
			req:     CreateOrderReq{Items: items},
			wantErr: ErrMissingTenant,
		},
		{
			name:    "dine-in without table",
			id:      identity.Guest(""),
			req:     CreateOrderReq{RestaurantID: r1.ID, Items: items, OrderType: entity.OrderTypeDineIn},
			wantErr: ErrBadRequest,
		},
		{
			name:    "delivery without address",
			id:      identity.Guest(""),
			req:     CreateOrderReq{RestaurantID: r1.ID, Items: items, OrderType: entity.OrderTypeDelivery},
			wantErr: ErrBadRequest,
		},
		{
			name:    "unknown order type",
			id:      identity.Guest(""),
			req:     CreateOrderReq{RestaurantID: r1.ID, Items: items, OrderType: "drive-through"},
			wantErr: ErrBadRequest,
		},
		{
			name: "menu item from another restaurant",
			id:   identity.Guest("4"),
			req: CreateOrderReq{
				RestaurantID: r1.ID,
				Items:        []OrderItemIn{{MenuItemID: m2.ID, Quantity: 1}},
				TableNumber:  "4", CustomerName: "G",
			},
			wantErr: ErrBadRequest,
		},
		{
			name: "guest without any attribution",
			id:   identity.Guest(""),
			req: CreateOrderReq{
				RestaurantID: r1.ID, Items: items,
				OrderType: entity.OrderTypeTakeaway,
			},
			wantErr: ErrBadRequest,
		},
		{
			name: "unknown initial status",
			id:   identity.Guest("4"),
			req: CreateOrderReq{
				RestaurantID: r1.ID, Items: items,
				TableNumber: "4", CustomerName: "G", Status: "cooking",
			},
			wantErr: ErrBadRequest,
		},
		{
			name:    "no items",
			id:      identity.Guest("4"),
			req:     CreateOrderReq{RestaurantID: r1.ID, TableNumber: "4", CustomerName: "G"},
			wantErr: ErrBadRequest,
		},
		{
			name:    "restaurant does not exist",
			id:      identity.Guest("4"),
			req:     CreateOrderReq{RestaurantID: 999, Items: items, TableNumber: "4", CustomerName: "G"},
			wantErr: ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.id, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderCreate_AuthenticatedAttribution(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	m1 := seedMenuItem(t, db, r1.ID, "Latte", 6500)

	diner := customerIdentity(42, "diner@example.com")
	order, err := svc.Create(diner, &CreateOrderReq{
		RestaurantID: r1.ID,
		Items:        []OrderItemIn{{MenuItemID: m1.ID, Quantity: 1}},
		OrderType:    entity.OrderTypeTakeaway,
	})
	require.NoError(t, err)
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, uint(42), *order.CustomerID)
	assert.Equal(t, "diner@example.com", order.CustomerEmail)
}

func TestOrderList_TenantIsolationForStaff(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	r2 := seedRestaurant(t, db, "R2")
	o1 := seedOrder(t, db, entity.Order{RestaurantID: r1.ID, TableNumber: "1", CustomerName: "A"})
	o2 := seedOrder(t, db, entity.Order{RestaurantID: r1.ID, TableNumber: "2", CustomerName: "B"})
	other := seedOrder(t, db, entity.Order{RestaurantID: r2.ID, TableNumber: "1", CustomerName: "C"})

	orders, err := svc.List(staffIdentity(r1.ID), 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	ids := []uint{orders[0].ID, orders[1].ID}
	assert.ElementsMatch(t, []uint{o1.ID, o2.ID}, ids)
	for _, o := range orders {
		assert.NotEqual(t, other.ID, o.ID)
	}
}

func TestOrderList_CustomerEmailScopedPerTenant(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	r2 := seedRestaurant(t, db, "R2")
	mine := seedOrder(t, db, entity.Order{RestaurantID: r1.ID, CustomerEmail: "diner@example.com"})
	// Same email, different tenant: must stay invisible.
	seedOrder(t, db, entity.Order{RestaurantID: r2.ID, CustomerEmail: "diner@example.com"})
	seedOrder(t, db, entity.Order{RestaurantID: r1.ID, CustomerEmail: "someone@else.com"})

	orders, err := svc.List(customerIdentity(9, "diner@example.com"), r1.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)
}

func TestOrderList_GuestByTable(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	mine := seedOrder(t, db, entity.Order{RestaurantID: r1.ID, TableNumber: "7"})
	seedOrder(t, db, entity.Order{RestaurantID: r1.ID, TableNumber: "8"})

	orders, err := svc.List(identity.Guest("7"), r1.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)

	_, err = svc.List(identity.Guest(""), r1.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMyOrders_ByCustomerID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	uid := uint(42)
	mine := seedOrder(t, db, entity.Order{RestaurantID: r1.ID, CustomerID: &uid, CustomerEmail: "d@e.com"})
	seedOrder(t, db, entity.Order{RestaurantID: r1.ID, TableNumber: "9"})

	orders, err := svc.MyOrders(customerIdentity(42, "d@e.com"), r1.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)
}

func TestOrderUpdate_LifecycleAndTenancy(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	r2 := seedRestaurant(t, db, "R2")
	order := seedOrder(t, db, entity.Order{RestaurantID: r1.ID, TableNumber: "5", CustomerName: "W"})

	ready := entity.StatusReady

	// Staff of another restaurant must see not-found, not forbidden.
	_, err := svc.Update(staffIdentity(r2.ID), order.ID, &UpdateOrderReq{Status: &ready})
	assert.ErrorIs(t, err, ErrNotFound)

	// Staff of the owning restaurant may jump forward.
	updated, err := svc.Update(staffIdentity(r1.ID), order.ID, &UpdateOrderReq{Status: &ready})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, updated.Status)

	// And the change is visible in the restaurant listing.
	orders, err := svc.List(staffIdentity(r1.ID), 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.StatusReady, orders[0].Status)

	// Backward transitions are rejected.
	pending := entity.StatusPending
	_, err = svc.Update(staffIdentity(r1.ID), order.ID, &UpdateOrderReq{Status: &pending})
	assert.ErrorIs(t, err, ErrBadRequest)

	// Completed is terminal.
	completed := entity.StatusCompleted
	_, err = svc.Update(staffIdentity(r1.ID), order.ID, &UpdateOrderReq{Status: &completed})
	require.NoError(t, err)
	_, err = svc.Update(staffIdentity(r1.ID), order.ID, &UpdateOrderReq{Status: &ready})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestOrderUpdate_Authorization(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	order := seedOrder(t, db, entity.Order{RestaurantID: r1.ID, TableNumber: "5"})

	name := "Updated"
	_, err := svc.Update(customerIdentity(1, "d@e.com"), order.ID, &UpdateOrderReq{CustomerName: &name})
	assert.ErrorIs(t, err, ErrForbidden)

	// Staff account without a restaurant binding cannot resolve a tenant.
	unbound := staffIdentity(0)
	_, err = svc.Update(unbound, order.ID, &UpdateOrderReq{CustomerName: &name})
	assert.ErrorIs(t, err, ErrMissingTenant)
}

func TestOrderDelete_ScopedLikeUpdate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	r2 := seedRestaurant(t, db, "R2")
	order := seedOrder(t, db, entity.Order{RestaurantID: r1.ID, TableNumber: "5"})

	err := svc.Delete(staffIdentity(r2.ID), order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(staffIdentity(r1.ID), order.ID))

	orders, err := svc.List(staffIdentity(r1.ID), 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderTrackByCode(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newOrderService(db)
	r1 := seedRestaurant(t, db, "R1")
	order := seedOrder(t, db, entity.Order{RestaurantID: r1.ID, TableNumber: "2", Status: entity.StatusPreparing})

	got, err := svc.TrackByCode(order.Code)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, entity.StatusPreparing, got.Status)

	_, err = svc.TrackByCode("no-such-code")
	assert.ErrorIs(t, err, ErrNotFound)
}
