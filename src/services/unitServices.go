package services

import (
	"context"
	"strings"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/models"
	"gorm.io/gorm"
)

type UnitService struct {
	db *gorm.DB
}

func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{db: db}
}

func (s *UnitService) GetAllUnits(ctx context.Context, status *int) ([]models.UnitModel, error) {
	units := []models.UnitModel{}
	q := applyStatusFilter(s.db.WithContext(ctx), "status", status)
	if err := q.Order("name, id").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (s *UnitService) GetUnitByID(ctx context.Context, id int) (*models.UnitModel, error) {
	return firstByID[models.UnitModel](s.db.WithContext(ctx), id, "unit")
}

func (s *UnitService) CreateUnit(ctx context.Context, req *dtos.UnitRequest) (*models.UnitModel, error) {
	normalizeUnitRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	unit := models.UnitModel{
		Name:      req.Name,
		ShortName: req.ShortName,
		Status:    statusOrDefault(req.Status),
		Audit:     models.Audit{CreatedByID: req.CreatedByID, UpdatedByID: req.CreatedByID},
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.UnitModel{}, "name", req.Name, 0, nil); err != nil {
			return err
		}
		return tx.Create(&unit).Error
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &unit, nil
}

func (s *UnitService) UpdateUnit(ctx context.Context, id int, req *dtos.UnitRequest) (*models.UnitModel, error) {
	normalizeUnitRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	var unit *models.UnitModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if unit, err = firstByID[models.UnitModel](tx, id, "unit"); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.UnitModel{}, "name", req.Name, id, nil); err != nil {
			return err
		}
		unit.Name = req.Name
		unit.ShortName = req.ShortName
		if req.Status != nil {
			unit.Status = *req.Status
		}
		unit.UpdatedByID = req.UpdatedByID
		return tx.Save(unit).Error
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return unit, nil
}

// DeleteUnit deletes a Unit that no addon measures in
func (s *UnitService) DeleteUnit(ctx context.Context, id int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := firstByID[models.UnitModel](tx, id, "unit"); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&models.AddonModel{}).Where("unit_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperrors.Conflict("unit %d is used by %d addon(s)", id, n)
		}
		return tx.Delete(&models.UnitModel{}, id).Error
	})
	return apperrors.MapError(err)
}

func normalizeUnitRequest(req *dtos.UnitRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.ShortName = strings.TrimSpace(req.ShortName)
}
