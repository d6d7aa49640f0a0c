package main

import (
	"log"

	"github.com/hotelops/backoffice/src/config"
	"github.com/hotelops/backoffice/src/db"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/models"
	"github.com/hotelops/backoffice/src/seed"
)

// Creates the admin user configured by ADMIN_USERNAME/ADMIN_PASSWORD without starting the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logg, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logg.Sync()

	database, err := db.Connect(cfg.DB, logg)
	if err != nil {
		logg.Fatal("failed to connect database", "error", err)
	}

	// Migrate schema if not exists
	if err := database.AutoMigrate(&models.UserModel{}); err != nil {
		logg.Fatal("failed to migrate user model", "error", err)
	}

	created, err := seed.EnsureUser(database, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword)
	if err != nil {
		logg.Fatal("failed to create user", "username", cfg.Seed.AdminUsername, "error", err)
	}
	if created {
		logg.Info("User created", "username", cfg.Seed.AdminUsername)
		return
	}
	logg.Info("User already exists", "username", cfg.Seed.AdminUsername)
}
