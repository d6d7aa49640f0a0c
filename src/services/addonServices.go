package services

import (
	"context"
	"strings"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/models"
	"gorm.io/gorm"
)

type AddonService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewAddonService creates a new instance of AddonService
func NewAddonService(db *gorm.DB, logg *logger.Logger) *AddonService {
	return &AddonService{db: db, log: logg.With("service", "AddonService")}
}

func addonsWithUnitName(db *gorm.DB) *gorm.DB {
	return db.Model(&models.AddonModel{}).
		Select("addons.*, COALESCE(units.name, '') AS unit_name").
		Joins("LEFT JOIN units ON units.id = addons.unit_id")
}

// GetAllAddons retrieves every addon with its unit name
func (s *AddonService) GetAllAddons(ctx context.Context, status *int) ([]models.AddonModel, error) {
	addons := []models.AddonModel{}
	q := applyStatusFilter(addonsWithUnitName(s.db.WithContext(ctx)), "addons.status", status)
	if err := q.Order("addons.name, addons.id").Find(&addons).Error; err != nil {
		return nil, err
	}
	return addons, nil
}

// GetAddonByID retrieves an Addon record by ID
func (s *AddonService) GetAddonByID(ctx context.Context, id int) (*models.AddonModel, error) {
	return getAddon(s.db.WithContext(ctx), id)
}

func getAddon(tx *gorm.DB, id int) (*models.AddonModel, error) {
	var addon models.AddonModel
	result := addonsWithUnitName(tx).Where("addons.id = ?", id).Limit(1).Find(&addon)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("addon %d not found", id)
	}
	return &addon, nil
}

// CreateAddon stores a new Addon measured in an existing Unit
func (s *AddonService) CreateAddon(ctx context.Context, req *dtos.AddonRequest) (*models.AddonModel, error) {
	normalizeAddonRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	var created *models.AddonModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(tx, &models.UnitModel{}, req.UnitID, "unit"); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.AddonModel{}, "name", req.Name, 0, nil); err != nil {
			return err
		}
		addon := models.AddonModel{
			Name:           req.Name,
			Description:    req.Description,
			Rate:           req.Rate,
			UnitID:         req.UnitID,
			UnitConversion: req.UnitConversion,
			Status:         statusOrDefault(req.Status),
			Audit:          models.Audit{CreatedByID: req.CreatedByID, UpdatedByID: req.CreatedByID},
		}
		if err := tx.Create(&addon).Error; err != nil {
			return err
		}
		var err error
		created, err = getAddon(tx, addon.ID)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return created, nil
}

// UpdateAddon updates an existing Addon record
func (s *AddonService) UpdateAddon(ctx context.Context, id int, req *dtos.AddonRequest) (*models.AddonModel, error) {
	normalizeAddonRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	var updated *models.AddonModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		addon, err := firstByID[models.AddonModel](tx, id, "addon")
		if err != nil {
			return err
		}
		if err := requireRef(tx, &models.UnitModel{}, req.UnitID, "unit"); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.AddonModel{}, "name", req.Name, id, nil); err != nil {
			return err
		}
		addon.Name = req.Name
		addon.Description = req.Description
		addon.Rate = req.Rate
		addon.UnitID = req.UnitID
		addon.UnitConversion = req.UnitConversion
		if req.Status != nil {
			addon.Status = *req.Status
		}
		addon.UpdatedByID = req.UpdatedByID
		if err := tx.Save(addon).Error; err != nil {
			return err
		}
		updated, err = getAddon(tx, id)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return updated, nil
}

// DeleteAddon deletes an Addon. Links to menu items block the delete unless cascade is
// set, in which case the links go first and the menu items are left untouched.
func (s *AddonService) DeleteAddon(ctx context.Context, id int, cascade bool) error {
	var unlinked int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := firstByID[models.AddonModel](tx, id, "addon"); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&models.MenuAddonModel{}).Where("addon_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 && !cascade {
			return apperrors.Conflict("addon %d is linked to %d menu item(s)", id, n)
		}
		if n > 0 {
			if err := tx.Where("addon_id = ?", id).Delete(&models.MenuAddonModel{}).Error; err != nil {
				return err
			}
			unlinked = n
		}
		return tx.Delete(&models.AddonModel{}, id).Error
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	if unlinked > 0 {
		s.log.Info("Addon deleted with links", "addon_id", id, "links_removed", unlinked)
	}
	return nil
}

func normalizeAddonRequest(req *dtos.AddonRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
}
