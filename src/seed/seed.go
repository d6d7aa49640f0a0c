package seed

import (
	"github.com/hotelops/backoffice/src/config"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var baseUnits = []models.UnitModel{
	{Name: "Piece", ShortName: "pc"},
	{Name: "Plate", ShortName: "plt"},
	{Name: "Gram", ShortName: "g"},
	{Name: "Millilitre", ShortName: "ml"},
}

// Seed creates the admin user and the base units when they are missing. Running it again changes nothing.
func Seed(db *gorm.DB, cfg config.SeedConfig, logg *logger.Logger) error {
	// Users
	created, err := EnsureUser(db, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		logg.Error("Failed to create user", "username", cfg.AdminUsername, "error", err)
		return err
	}
	if created {
		logg.Info("User created", "username", cfg.AdminUsername)
	} else {
		logg.Debug("User already exists", "username", cfg.AdminUsername)
	}

	// Units
	createdCount := 0
	for _, u := range baseUnits {
		var n int64
		if err := db.Model(&models.UnitModel{}).Where("LOWER(name) = LOWER(?)", u.Name).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		unit := u
		unit.Status = models.StatusActive
		if err := db.Create(&unit).Error; err != nil {
			logg.Error("Failed to create unit", "name", u.Name, "error", err)
			return err
		}
		createdCount++
	}
	if createdCount > 0 {
		logg.Info("Finished creating units", "created", createdCount)
	} else {
		logg.Debug("All units already exist")
	}
	return nil
}

// EnsureUser creates username with a bcrypt hash of password unless it already exists.
func EnsureUser(db *gorm.DB, username, password string) (bool, error) {
	var n int64
	if err := db.Model(&models.UserModel{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	user := models.UserModel{Username: username, Password: string(hashedPassword)}
	if err := db.Create(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}
