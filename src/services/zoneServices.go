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

type ZoneService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewZoneService creates a new instance of ZoneService
func NewZoneService(db *gorm.DB, logg *logger.Logger) *ZoneService {
	return &ZoneService{db: db, log: logg.With("service", "ZoneService")}
}

func zonesWithDistrictName(db *gorm.DB) *gorm.DB {
	return db.Model(&models.ZoneModel{}).
		Select("zones.*, COALESCE(districts.name, '') AS district_name").
		Joins("LEFT JOIN districts ON districts.id = zones.district_id")
}

// ListZones returns zones ordered by name, optionally scoped to one district
func (s *ZoneService) ListZones(ctx context.Context, filter dtos.GeoFilter) ([]models.ZoneModel, error) {
	zones := []models.ZoneModel{}
	q := zonesWithDistrictName(s.db.WithContext(ctx))
	if filter.ParentID != nil {
		q = q.Where("zones.district_id = ?", *filter.ParentID)
	}
	q = applyStatusFilter(q, "zones.status", filter.Status)
	if err := q.Order("zones.name, zones.id").Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// GetZoneByID retrieves a Zone with its district name
func (s *ZoneService) GetZoneByID(ctx context.Context, id int) (*models.ZoneModel, error) {
	return getZone(s.db.WithContext(ctx), id)
}

func getZone(tx *gorm.DB, id int) (*models.ZoneModel, error) {
	var zone models.ZoneModel
	result := zonesWithDistrictName(tx).Where("zones.id = ?", id).Limit(1).Find(&zone)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("zone %d not found", id)
	}
	return &zone, nil
}

// CreateZone stores a new Zone under an existing District
func (s *ZoneService) CreateZone(ctx context.Context, req *dtos.ZoneRequest) (*models.ZoneModel, error) {
	normalizeZoneRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var created *models.ZoneModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(tx, &models.DistrictModel{}, req.DistrictID, "district"); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.ZoneModel{}, "code", req.Code, 0, map[string]any{"district_id": req.DistrictID}); err != nil {
			return err
		}
		zone := models.ZoneModel{
			Name:        req.Name,
			Code:        req.Code,
			DistrictID:  req.DistrictID,
			Description: req.Description,
			Status:      statusOrDefault(req.Status),
			Audit:       models.Audit{CreatedByID: req.CreatedByID, UpdatedByID: req.CreatedByID},
		}
		if err := tx.Create(&zone).Error; err != nil {
			return err
		}
		var err error
		created, err = getZone(tx, zone.ID)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return created, nil
}

// UpdateZone overwrites a Zone; the target district must exist
func (s *ZoneService) UpdateZone(ctx context.Context, id int, req *dtos.ZoneRequest) (*models.ZoneModel, error) {
	normalizeZoneRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var updated *models.ZoneModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		zone, err := firstByID[models.ZoneModel](tx, id, "zone")
		if err != nil {
			return err
		}
		if err := requireRef(tx, &models.DistrictModel{}, req.DistrictID, "district"); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.ZoneModel{}, "code", req.Code, id, map[string]any{"district_id": req.DistrictID}); err != nil {
			return err
		}
		zone.Name = req.Name
		zone.Code = req.Code
		zone.DistrictID = req.DistrictID
		zone.Description = req.Description
		if req.Status != nil {
			zone.Status = *req.Status
		}
		zone.UpdatedByID = req.UpdatedByID
		if err := tx.Save(zone).Error; err != nil {
			return err
		}
		updated, err = getZone(tx, id)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return updated, nil
}

// DeleteZone deletes a Zone unless an agent still references it
func (s *ZoneService) DeleteZone(ctx context.Context, id int) error {
	return deleteGeo(ctx, s.db, s.log, zoneLevel, id, false)
}

func normalizeZoneRequest(req *dtos.ZoneRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Description = trimPtr(req.Description)
}
