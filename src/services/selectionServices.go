package services

import (
	"context"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/selection"
	"gorm.io/gorm"
)

type SelectionService struct {
	db *gorm.DB
}

// NewSelectionService creates a new instance of SelectionService
func NewSelectionService(db *gorm.DB) *SelectionService {
	return &SelectionService{db: db}
}

var levelByField = map[selection.Field]*geoLevel{
	selection.Country:  countryLevel,
	selection.State:    stateLevel,
	selection.District: districtLevel,
	selection.Zone:     zoneLevel,
}

// ResolveSelection applies a change to a cascading geo selection and returns the
// option rows for the level right below the changed one.
func (s *SelectionService) ResolveSelection(ctx context.Context, req *dtos.ResolveSelectionRequest) (*dtos.ResolveSelectionResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	field, err := selection.ParseField(req.ChangedField)
	if err != nil {
		return nil, apperrors.Validation("changed_field", "must be one of: country, state, district, zone")
	}
	result, err := selection.Resolve(field, req.NewValue, req.Selection)
	if err != nil {
		return nil, apperrors.Validation("changed_field", err.Error())
	}

	resp := &dtos.ResolveSelectionResponse{Result: result, Options: []dtos.GeoOption{}}
	if next := selection.Next(field); next != "" && req.NewValue > 0 {
		resp.Options, err = listOptions(ctx, s.db, levelByField[next], req.NewValue)
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}
