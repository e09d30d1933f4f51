package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vaibhavmehta2503/Dine-Qr/pkg/resp"
	"github.com/vaibhavmehta2503/Dine-Qr/services"
	"github.com/vaibhavmehta2503/Dine-Qr/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

func queryUint(c *gin.Context, key string) uint {
	v, _ := strconv.ParseUint(c.Query(key), 10, 64)
	return uint(v)
}

func paramUint(c *gin.Context, key string) uint {
	v, _ := strconv.ParseUint(c.Param(key), 10, 64)
	return uint(v)
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(utils.CurrentIdentity(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?restaurantId=&tableNumber=
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Service.List(utils.CurrentIdentity(c), queryUint(c, "restaurantId"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/my?restaurantId=&tableNumber=
func (oc *OrderController) MyOrders(c *gin.Context) {
	orders, err := oc.Service.MyOrders(utils.CurrentIdentity(c), queryUint(c, "restaurantId"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/track/:code
func (oc *OrderController) Track(c *gin.Context) {
	order, err := oc.Service.TrackByCode(c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"code": order.Code, "status": order.Status, "orderType": order.OrderType})
}

// PUT /orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Update(utils.CurrentIdentity(c), paramUint(c, "id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	if err := oc.Service.Delete(utils.CurrentIdentity(c), paramUint(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}
