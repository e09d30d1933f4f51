package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/vaibhavmehta2503/Dine-Qr/configs"
	"github.com/vaibhavmehta2503/Dine-Qr/middlewares"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/logging"
	"github.com/vaibhavmehta2503/Dine-Qr/repository"
	"github.com/vaibhavmehta2503/Dine-Qr/routes"
	"github.com/vaibhavmehta2503/Dine-Qr/services"
)

func main() {
	cfg := configs.LoadConfig()
	logger := logging.New(cfg.LogLevel)

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal(err)
	}
	db := configs.DB()

	// migrate + seed
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedSuperadmin(cfg); err != nil {
		log.Fatalf("seed superadmin failed: %v", err)
	}

	// daily inventory expiry scan
	scanner := services.NewExpiryScanner(repository.NewInventoryRepository(db), logger)
	if err := scanner.Start(); err != nil {
		log.Fatalf("start expiry scanner failed: %v", err)
	}
	defer scanner.Stop()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, scanner)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
