package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/vaibhavmehta2503/Dine-Qr/pkg/resp"
	"github.com/vaibhavmehta2503/Dine-Qr/services"
	"github.com/vaibhavmehta2503/Dine-Qr/utils"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

// GET /menu?restaurantId=
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Service.List(utils.CurrentIdentity(c), queryUint(c, "restaurantId"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu
func (mc *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Service.Create(utils.CurrentIdentity(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	var req services.UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := mc.Service.Update(utils.CurrentIdentity(c), paramUint(c, "id"), &req); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item updated"})
}

// DELETE /menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	if err := mc.Service.Delete(utils.CurrentIdentity(c), paramUint(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
