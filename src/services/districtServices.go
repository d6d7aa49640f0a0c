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

type DistrictService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewDistrictService creates a new instance of DistrictService
func NewDistrictService(db *gorm.DB, logg *logger.Logger) *DistrictService {
	return &DistrictService{db: db, log: logg.With("service", "DistrictService")}
}

func districtsWithStateName(db *gorm.DB) *gorm.DB {
	return db.Model(&models.DistrictModel{}).
		Select("districts.*, COALESCE(states.name, '') AS state_name").
		Joins("LEFT JOIN states ON states.id = districts.state_id")
}

// ListDistricts returns districts ordered by name, optionally scoped to one state
func (s *DistrictService) ListDistricts(ctx context.Context, filter dtos.GeoFilter) ([]models.DistrictModel, error) {
	districts := []models.DistrictModel{}
	q := districtsWithStateName(s.db.WithContext(ctx))
	if filter.ParentID != nil {
		q = q.Where("districts.state_id = ?", *filter.ParentID)
	}
	q = applyStatusFilter(q, "districts.status", filter.Status)
	if err := q.Order("districts.name, districts.id").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

// GetDistrictByID retrieves a District with its state name
func (s *DistrictService) GetDistrictByID(ctx context.Context, id int) (*models.DistrictModel, error) {
	return getDistrict(s.db.WithContext(ctx), id)
}

func getDistrict(tx *gorm.DB, id int) (*models.DistrictModel, error) {
	var district models.DistrictModel
	result := districtsWithStateName(tx).Where("districts.id = ?", id).Limit(1).Find(&district)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("district %d not found", id)
	}
	return &district, nil
}

// CreateDistrict stores a new District under an existing State
func (s *DistrictService) CreateDistrict(ctx context.Context, req *dtos.DistrictRequest) (*models.DistrictModel, error) {
	normalizeDistrictRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var created *models.DistrictModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(tx, &models.StateModel{}, req.StateID, "state"); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.DistrictModel{}, "code", req.Code, 0, map[string]any{"state_id": req.StateID}); err != nil {
			return err
		}
		district := models.DistrictModel{
			Name:        req.Name,
			Code:        req.Code,
			StateID:     req.StateID,
			Description: req.Description,
			Status:      statusOrDefault(req.Status),
			Audit:       models.Audit{CreatedByID: req.CreatedByID, UpdatedByID: req.CreatedByID},
		}
		if err := tx.Create(&district).Error; err != nil {
			return err
		}
		var err error
		created, err = getDistrict(tx, district.ID)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return created, nil
}

// UpdateDistrict overwrites a District; the target state must exist
func (s *DistrictService) UpdateDistrict(ctx context.Context, id int, req *dtos.DistrictRequest) (*models.DistrictModel, error) {
	normalizeDistrictRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var updated *models.DistrictModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		district, err := firstByID[models.DistrictModel](tx, id, "district")
		if err != nil {
			return err
		}
		if err := requireRef(tx, &models.StateModel{}, req.StateID, "state"); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.DistrictModel{}, "code", req.Code, id, map[string]any{"state_id": req.StateID}); err != nil {
			return err
		}
		district.Name = req.Name
		district.Code = req.Code
		district.StateID = req.StateID
		district.Description = req.Description
		if req.Status != nil {
			district.Status = *req.Status
		}
		district.UpdatedByID = req.UpdatedByID
		if err := tx.Save(district).Error; err != nil {
			return err
		}
		updated, err = getDistrict(tx, id)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return updated, nil
}

// DeleteDistrict deletes a District. Existing zones block the delete unless cascade is set.
func (s *DistrictService) DeleteDistrict(ctx context.Context, id int, cascade bool) error {
	return deleteGeo(ctx, s.db, s.log, districtLevel, id, cascade)
}

func normalizeDistrictRequest(req *dtos.DistrictRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Description = trimPtr(req.Description)
}
