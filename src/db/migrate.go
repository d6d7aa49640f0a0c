package db

import (
	"github.com/hotelops/backoffice/src/models"
	"gorm.io/gorm"
)

// Migrate creates or updates every table of the back-office schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.CountryModel{},
		&models.StateModel{},
		&models.DistrictModel{},
		&models.ZoneModel{},
		&models.CategoryModel{},
		&models.UnitModel{},
		&models.AddonModel{},
		&models.MenuItemModel{},
		&models.MenuVariantModel{},
		&models.MenuAddonModel{},
		&models.AgentModel{},
	)
}
