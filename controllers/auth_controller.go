package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaibhavmehta2503/Dine-Qr/pkg/resp"
	"github.com/vaibhavmehta2503/Dine-Qr/services"
	"github.com/vaibhavmehta2503/Dine-Qr/utils"
)

type SignupRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	RestaurantID *uint  `json:"restaurantId"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateRoleRequest struct {
	Role         string `json:"role" binding:"required"`
	RestaurantID *uint  `json:"restaurantId"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// POST /auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.Signup(req.Name, req.Email, req.Password, req.RestaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, user)
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": user})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	user, err := a.Service.Profile(id.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}

// PUT /auth/role/:id
func (a *AuthController) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.UpdateRole(utils.CurrentIdentity(c), paramUint(c, "id"), req.Role, req.RestaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "role updated", "user": user})
}

// GET /auth/users
func (a *AuthController) ListUsers(c *gin.Context) {
	users, err := a.Service.ListUsers(utils.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, users)
}
