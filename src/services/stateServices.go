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

type StateService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewStateService creates a new instance of StateService
func NewStateService(db *gorm.DB, logg *logger.Logger) *StateService {
	return &StateService{db: db, log: logg.With("service", "StateService")}
}

func statesWithCountryName(db *gorm.DB) *gorm.DB {
	return db.Model(&models.StateModel{}).
		Select("states.*, COALESCE(countries.name, '') AS country_name").
		Joins("LEFT JOIN countries ON countries.id = states.country_id")
}

// ListStates returns states ordered by name. A ParentID scopes the list to one country.
func (s *StateService) ListStates(ctx context.Context, filter dtos.GeoFilter) ([]models.StateModel, error) {
	states := []models.StateModel{}
	q := statesWithCountryName(s.db.WithContext(ctx))
	if filter.ParentID != nil {
		q = q.Where("states.country_id = ?", *filter.ParentID)
	}
	q = applyStatusFilter(q, "states.status", filter.Status)
	if err := q.Order("states.name, states.id").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

// GetStateByID retrieves a State with its country name
func (s *StateService) GetStateByID(ctx context.Context, id int) (*models.StateModel, error) {
	return getState(s.db.WithContext(ctx), id)
}

func getState(tx *gorm.DB, id int) (*models.StateModel, error) {
	var state models.StateModel
	result := statesWithCountryName(tx).Where("states.id = ?", id).Limit(1).Find(&state)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("state %d not found", id)
	}
	return &state, nil
}

// CreateState stores a new State under an existing Country
func (s *StateService) CreateState(ctx context.Context, req *dtos.StateRequest) (*models.StateModel, error) {
	normalizeStateRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var created *models.StateModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(tx, &models.CountryModel{}, req.CountryID, "country"); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.StateModel{}, "code", req.Code, 0, map[string]any{"country_id": req.CountryID}); err != nil {
			return err
		}
		state := models.StateModel{
			Name:      req.Name,
			Code:      req.Code,
			Capital:   req.Capital,
			CountryID: req.CountryID,
			Status:    statusOrDefault(req.Status),
			Audit:     models.Audit{CreatedByID: req.CreatedByID, UpdatedByID: req.CreatedByID},
		}
		if err := tx.Create(&state).Error; err != nil {
			return err
		}
		var err error
		created, err = getState(tx, state.ID)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return created, nil
}

// UpdateState overwrites a State. Moving it to another country requires that country to exist.
func (s *StateService) UpdateState(ctx context.Context, id int, req *dtos.StateRequest) (*models.StateModel, error) {
	normalizeStateRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var updated *models.StateModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := firstByID[models.StateModel](tx, id, "state")
		if err != nil {
			return err
		}
		if err := requireRef(tx, &models.CountryModel{}, req.CountryID, "country"); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.StateModel{}, "code", req.Code, id, map[string]any{"country_id": req.CountryID}); err != nil {
			return err
		}
		state.Name = req.Name
		state.Code = req.Code
		state.Capital = req.Capital
		state.CountryID = req.CountryID
		if req.Status != nil {
			state.Status = *req.Status
		}
		state.UpdatedByID = req.UpdatedByID
		if err := tx.Save(state).Error; err != nil {
			return err
		}
		updated, err = getState(tx, id)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return updated, nil
}

// DeleteState deletes a State. Existing districts block the delete unless cascade is set.
func (s *StateService) DeleteState(ctx context.Context, id int, cascade bool) error {
	return deleteGeo(ctx, s.db, s.log, stateLevel, id, cascade)
}

func normalizeStateRequest(req *dtos.StateRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Capital = trimPtr(req.Capital)
}
