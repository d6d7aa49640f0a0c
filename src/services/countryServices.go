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

type CountryService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewCountryService creates a new instance of CountryService
func NewCountryService(db *gorm.DB, logg *logger.Logger) *CountryService {
	return &CountryService{db: db, log: logg.With("service", "CountryService")}
}

// GetAllCountries retrieves every country, optionally restricted to one status
func (s *CountryService) GetAllCountries(ctx context.Context, status *int) ([]models.CountryModel, error) {
	countries := []models.CountryModel{}
	q := applyStatusFilter(s.db.WithContext(ctx), "status", status)
	if err := q.Order("name, id").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// GetCountryByID retrieves a Country record by ID
func (s *CountryService) GetCountryByID(ctx context.Context, id int) (*models.CountryModel, error) {
	return firstByID[models.CountryModel](s.db.WithContext(ctx), id, "country")
}

// CreateCountry validates and stores a new Country
func (s *CountryService) CreateCountry(ctx context.Context, req *dtos.CountryRequest) (*models.CountryModel, error) {
	normalizeCountryRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	country := models.CountryModel{
		Name:    req.Name,
		Code:    req.Code,
		Capital: req.Capital,
		Status:  statusOrDefault(req.Status),
		Audit:   models.Audit{CreatedByID: req.CreatedByID, UpdatedByID: req.CreatedByID},
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureUniqueCountry(tx, req, 0); err != nil {
			return err
		}
		return tx.Create(&country).Error
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &country, nil
}

// UpdateCountry re-validates and overwrites an existing Country
func (s *CountryService) UpdateCountry(ctx context.Context, id int, req *dtos.CountryRequest) (*models.CountryModel, error) {
	normalizeCountryRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var country *models.CountryModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if country, err = firstByID[models.CountryModel](tx, id, "country"); err != nil {
			return err
		}
		if err := s.ensureUniqueCountry(tx, req, id); err != nil {
			return err
		}
		country.Name = req.Name
		country.Code = req.Code
		country.Capital = req.Capital
		if req.Status != nil {
			country.Status = *req.Status
		}
		country.UpdatedByID = req.UpdatedByID
		return tx.Save(country).Error
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return country, nil
}

// DeleteCountry deletes a Country. Existing states block the delete unless cascade is set.
func (s *CountryService) DeleteCountry(ctx context.Context, id int, cascade bool) error {
	return deleteGeo(ctx, s.db, s.log, countryLevel, id, cascade)
}

func (s *CountryService) ensureUniqueCountry(tx *gorm.DB, req *dtos.CountryRequest, excludeID int) error {
	if err := ensureUnique(tx, &models.CountryModel{}, "name", req.Name, excludeID, nil); err != nil {
		return err
	}
	return ensureUnique(tx, &models.CountryModel{}, "code", req.Code, excludeID, nil)
}

func normalizeCountryRequest(req *dtos.CountryRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Capital = trimPtr(req.Capital)
}
