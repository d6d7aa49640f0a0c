package db

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/hotelops/backoffice/src/config"
	"github.com/hotelops/backoffice/src/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Connect opens the postgres connection described by cfg.
func Connect(cfg config.DBConfig, logg *logger.Logger) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("DB_DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), GormConfig())
	if err != nil {
		logg.Error("Error connecting to database", "error", err)
		return nil, err
	}

	logg.Info("Database connected")
	return db, nil
}

// GormConfig is shared by the server and the tests so both translate driver errors the same way.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormLogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}
