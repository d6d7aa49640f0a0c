package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/config"
	"github.com/hotelops/backoffice/src/db"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/routes"
	"github.com/hotelops/backoffice/src/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n", err)
	}

	logg, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("Error creating logger: %v\n", err)
	}
	defer logg.Sync()

	if cfg.Log.Mode == "prod" || cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database connection
	database, err := db.Connect(cfg.DB, logg)
	if err != nil {
		logg.Fatal("Error connecting to database", "error", err)
	}

	// Auto-migrate models
	if err := db.Migrate(database); err != nil {
		logg.Fatal("Error during auto-migration", "error", err)
	}

	if cfg.Seed.Enabled {
		if err := seed.Seed(database, cfg.Seed, logg); err != nil {
			logg.Fatal("Error seeding database", "error", err)
		}
	}

	router := routes.NewRouter(database, cfg, logg)

	logg.Info("Server starting", "host", cfg.Server.Host)
	if err := router.Run(cfg.Server.Host); err != nil {
		logg.Fatal("Error starting server", "host", cfg.Server.Host, "error", err)
	}
}
