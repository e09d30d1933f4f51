package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vaibhavmehta2503/Dine-Qr/configs"
	"github.com/vaibhavmehta2503/Dine-Qr/controllers"
	"github.com/vaibhavmehta2503/Dine-Qr/middlewares"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
	"github.com/vaibhavmehta2503/Dine-Qr/repository"
	"github.com/vaibhavmehta2503/Dine-Qr/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, scanner *services.ExpiryScanner) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	invRepo := repository.NewInventoryRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(db, restRepo)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, restRepo)
	invSvc := services.NewInventoryService(invRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	invCtrl := controllers.NewInventoryController(invSvc, scanner)

	auth := middlewares.AuthMiddleware
	optional := middlewares.OptionalAuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(cfg.JWTSecret), authCtrl.Me)
		a.PUT("/role/:id", auth(cfg.JWTSecret, identity.RoleAdmin, identity.RoleSuperadmin), authCtrl.UpdateRole)
		a.GET("/users", auth(cfg.JWTSecret, identity.RoleAdmin, identity.RoleSuperadmin), authCtrl.ListUsers)
	}

	// Restaurants
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.POST("/restaurants", auth(cfg.JWTSecret, identity.RoleAdmin, identity.RoleSuperadmin), restCtrl.Create)

	// Menu
	m := r.Group("/menu")
	{
		m.GET("", optional, menuCtrl.List)
		m.POST("", auth(cfg.JWTSecret, identity.RoleStaff, identity.RoleAdmin), menuCtrl.Create)
		m.PUT("/:id", auth(cfg.JWTSecret, identity.RoleStaff, identity.RoleAdmin), menuCtrl.Update)
		m.DELETE("/:id", auth(cfg.JWTSecret, identity.RoleStaff, identity.RoleAdmin), menuCtrl.Delete)
	}

	// Orders. Listing and creation tolerate guests; the visibility
	// resolver decides downstream what a guest may actually see.
	o := r.Group("/orders")
	{
		o.GET("", optional, orderCtrl.List)
		o.POST("", optional, orderCtrl.Create)
		o.GET("/my", optional, orderCtrl.MyOrders)
		o.GET("/track/:code", orderCtrl.Track)
		o.PUT("/:id", auth(cfg.JWTSecret, identity.RoleStaff, identity.RoleAdmin), orderCtrl.Update)
		o.DELETE("/:id", auth(cfg.JWTSecret, identity.RoleStaff, identity.RoleAdmin), orderCtrl.Delete)
	}

	// Inventory
	inv := r.Group("/inventory", auth(cfg.JWTSecret, identity.RoleStaff, identity.RoleAdmin))
	{
		inv.GET("", invCtrl.List)
		inv.POST("", invCtrl.Create)
		inv.PUT("/:id", invCtrl.Update)
		inv.DELETE("/:id", invCtrl.Delete)
		inv.GET("/expiring", invCtrl.ListExpiring)
	}
	r.POST("/inventory/expiry-scan",
		auth(cfg.JWTSecret, identity.RoleAdmin, identity.RoleSuperadmin),
		invCtrl.RunExpiryScan)
}
