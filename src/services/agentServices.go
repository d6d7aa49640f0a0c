package services

import (
	"context"
	"strings"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/models"
	"gorm.io/gorm"
)

// missingName replaces a geo name that cannot be resolved on agent reads.
const missingName = "-"

type AgentService struct {
	db *gorm.DB
}

// NewAgentService creates a new instance of AgentService
func NewAgentService(db *gorm.DB) *AgentService {
	return &AgentService{db: db}
}

func agentsWithGeoNames(db *gorm.DB) *gorm.DB {
	return db.Model(&models.AgentModel{}).
		Select("agents.*, " +
			"COALESCE(countries.name, '" + missingName + "') AS country_name, " +
			"COALESCE(states.name, '" + missingName + "') AS state_name, " +
			"COALESCE(districts.name, '" + missingName + "') AS district_name, " +
			"COALESCE(zones.name, '" + missingName + "') AS zone_name").
		Joins("LEFT JOIN countries ON countries.id = agents.country_id").
		Joins("LEFT JOIN states ON states.id = agents.state_id").
		Joins("LEFT JOIN districts ON districts.id = agents.district_id").
		Joins("LEFT JOIN zones ON zones.id = agents.zone_id")
}

// GetAllAgents lists agents matching every set filter
func (s *AgentService) GetAllAgents(ctx context.Context, filter dtos.AgentFilter) ([]models.AgentModel, error) {
	agents := []models.AgentModel{}
	q := agentsWithGeoNames(s.db.WithContext(ctx))
	if filter.CountryID != nil {
		q = q.Where("agents.country_id = ?", *filter.CountryID)
	}
	if filter.StateID != nil {
		q = q.Where("agents.state_id = ?", *filter.StateID)
	}
	if filter.DistrictID != nil {
		q = q.Where("agents.district_id = ?", *filter.DistrictID)
	}
	if filter.ZoneID != nil {
		q = q.Where("agents.zone_id = ?", *filter.ZoneID)
	}
	q = applyStatusFilter(q, "agents.status", filter.Status)
	if err := q.Order("agents.name, agents.id").Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

// GetAgentByID retrieves an Agent with its geo names
func (s *AgentService) GetAgentByID(ctx context.Context, id int) (*models.AgentModel, error) {
	return getAgent(s.db.WithContext(ctx), id)
}

func getAgent(tx *gorm.DB, id int) (*models.AgentModel, error) {
	var agent models.AgentModel
	result := agentsWithGeoNames(tx).Where("agents.id = ?", id).Limit(1).Find(&agent)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("agent %d not found", id)
	}
	return &agent, nil
}

// CreateAgent stores a new Agent after checking its geo chain
func (s *AgentService) CreateAgent(ctx context.Context, req *dtos.AgentRequest) (*models.AgentModel, error) {
	normalizeAgentRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var created *models.AgentModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkGeoChain(tx, req); err != nil {
			return err
		}
		agent := models.AgentModel{
			Name:       req.Name,
			Phone:      req.Phone,
			Email:      req.Email,
			Address:    req.Address,
			CountryID:  req.CountryID,
			StateID:    req.StateID,
			DistrictID: req.DistrictID,
			ZoneID:     req.ZoneID,
			Status:     statusOrDefault(req.Status),
			Audit:      models.Audit{CreatedByID: req.CreatedByID, UpdatedByID: req.CreatedByID},
		}
		if err := tx.Create(&agent).Error; err != nil {
			return err
		}
		var err error
		created, err = getAgent(tx, agent.ID)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return created, nil
}

// UpdateAgent overwrites an Agent after checking its geo chain
func (s *AgentService) UpdateAgent(ctx context.Context, id int, req *dtos.AgentRequest) (*models.AgentModel, error) {
	normalizeAgentRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var updated *models.AgentModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		agent, err := firstByID[models.AgentModel](tx, id, "agent")
		if err != nil {
			return err
		}
		if err := checkGeoChain(tx, req); err != nil {
			return err
		}
		agent.Name = req.Name
		agent.Phone = req.Phone
		agent.Email = req.Email
		agent.Address = req.Address
		agent.CountryID = req.CountryID
		agent.StateID = req.StateID
		agent.DistrictID = req.DistrictID
		agent.ZoneID = req.ZoneID
		if req.Status != nil {
			agent.Status = *req.Status
		}
		agent.UpdatedByID = req.UpdatedByID
		if err := tx.Save(agent).Error; err != nil {
			return err
		}
		updated, err = getAgent(tx, id)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return updated, nil
}

// DeleteAgent deletes an Agent by ID
func (s *AgentService) DeleteAgent(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&models.AgentModel{}, id)
	if result.Error != nil {
		return apperrors.MapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("agent %d not found", id)
	}
	return nil
}

// checkGeoChain requires every referenced geo row to exist and each level to
// belong to the one above it.
func checkGeoChain(tx *gorm.DB, req *dtos.AgentRequest) error {
	if err := requireRef(tx, &models.CountryModel{}, req.CountryID, "country"); err != nil {
		return err
	}
	state, err := refByID[models.StateModel](tx, req.StateID, "state")
	if err != nil {
		return err
	}
	district, err := refByID[models.DistrictModel](tx, req.DistrictID, "district")
	if err != nil {
		return err
	}
	zone, err := refByID[models.ZoneModel](tx, req.ZoneID, "zone")
	if err != nil {
		return err
	}

	verr := &apperrors.ValidationError{}
	if state.CountryID != req.CountryID {
		verr.Add("state_id", "does not belong to the selected country")
	}
	if district.StateID != req.StateID {
		verr.Add("district_id", "does not belong to the selected state")
	}
	if zone.DistrictID != req.DistrictID {
		verr.Add("zone_id", "does not belong to the selected district")
	}
	return verr.OrNil()
}

// refByID is firstByID for foreign keys: a miss is a ReferenceError.
func refByID[T any](tx *gorm.DB, id int, what string) (*T, error) {
	var rows []T
	if err := tx.Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.Reference("%s %d does not exist", what, id)
	}
	return &rows[0], nil
}

func normalizeAgentRequest(req *dtos.AgentRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = trimPtr(req.Email)
	req.Address = trimPtr(req.Address)
}
