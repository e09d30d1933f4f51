package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/vaibhavmehta2503/Dine-Qr/pkg/resp"
	"github.com/vaibhavmehta2503/Dine-Qr/services"
	"github.com/vaibhavmehta2503/Dine-Qr/utils"
)

type InventoryController struct {
	Service *services.InventoryService
	Scanner *services.ExpiryScanner
}

func NewInventoryController(svc *services.InventoryService, scanner *services.ExpiryScanner) *InventoryController {
	return &InventoryController{Service: svc, Scanner: scanner}
}

// GET /inventory
func (ic *InventoryController) List(c *gin.Context) {
	items, err := ic.Service.List(utils.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /inventory
func (ic *InventoryController) Create(c *gin.Context) {
	var req services.CreateInventoryItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ic.Service.Create(utils.CurrentIdentity(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /inventory/:id
func (ic *InventoryController) Update(c *gin.Context) {
	var req services.UpdateInventoryItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ic.Service.Update(utils.CurrentIdentity(c), paramUint(c, "id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /inventory/:id
func (ic *InventoryController) Delete(c *gin.Context) {
	if err := ic.Service.Delete(utils.CurrentIdentity(c), paramUint(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "inventory item deleted"})
}

// GET /inventory/expiring
func (ic *InventoryController) ListExpiring(c *gin.Context) {
	items, err := ic.Service.ListExpiring(utils.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /inventory/expiry-scan runs the same scan the scheduler triggers
// daily, for operational testing.
func (ic *InventoryController) RunExpiryScan(c *gin.Context) {
	alerts := ic.Scanner.RunNow()
	resp.OK(c, gin.H{"alerts": len(alerts)})
}
