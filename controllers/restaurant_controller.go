package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/vaibhavmehta2503/Dine-Qr/pkg/resp"
	"github.com/vaibhavmehta2503/Dine-Qr/services"
	"github.com/vaibhavmehta2503/Dine-Qr/utils"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: svc}
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	rests, err := rc.Service.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id (the QR landing lookup)
func (rc *RestaurantController) Detail(c *gin.Context) {
	rest, err := rc.Service.Get(paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /restaurants
func (rc *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := rc.Service.Create(utils.CurrentIdentity(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rest)
}
