package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
)

// SeedSuperadmin creates the bootstrap superadmin account on first boot.
func SeedSuperadmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding superadmin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("superadmin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Name:     "Superadmin",
		Password: string(hash),
		Role:     identity.RoleSuperadmin,
	}
	return db.Create(&admin).Error
}
