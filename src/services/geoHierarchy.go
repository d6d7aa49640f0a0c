package services

import (
	"context"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/models"
	"gorm.io/gorm"
)

// geoLevel describes one table of the country > state > district > zone chain.
type geoLevel struct {
	name         string
	parentColumn string
	agentColumn  string
	child        *geoLevel
	newModel     func() any
}

var (
	zoneLevel = &geoLevel{
		name:         "zone",
		parentColumn: "district_id",
		agentColumn:  "zone_id",
		newModel:     func() any { return &models.ZoneModel{} },
	}
	districtLevel = &geoLevel{
		name:         "district",
		parentColumn: "state_id",
		agentColumn:  "district_id",
		child:        zoneLevel,
		newModel:     func() any { return &models.DistrictModel{} },
	}
	stateLevel = &geoLevel{
		name:         "state",
		parentColumn: "country_id",
		agentColumn:  "state_id",
		child:        districtLevel,
		newModel:     func() any { return &models.StateModel{} },
	}
	countryLevel = &geoLevel{
		name:        "country",
		agentColumn: "country_id",
		child:       stateLevel,
		newModel:    func() any { return &models.CountryModel{} },
	}
)

type levelIDs struct {
	level *geoLevel
	ids   []int
}

// deleteGeo removes one geo row. Without cascade any child row is a ConflictError;
// with cascade the whole subtree is removed bottom-up in one transaction. Rows
// referenced by agents always block the delete.
func deleteGeo(ctx context.Context, db *gorm.DB, log *logger.Logger, level *geoLevel, id int, cascade bool) error {
	var removed []levelIDs
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := rowExists(tx, level.newModel(), "id = ?", id)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.NotFound("%s %d not found", level.name, id)
		}

		subtree := []levelIDs{{level: level, ids: []int{id}}}
		current := []int{id}
		for l := level; l.child != nil && len(current) > 0; l = l.child {
			var childIDs []int
			if err := tx.Model(l.child.newModel()).Where(l.child.parentColumn+" IN ?", current).Pluck("id", &childIDs).Error; err != nil {
				return err
			}
			if len(childIDs) > 0 && !cascade {
				return apperrors.Conflict("%s %d has %d dependent %s record(s)", level.name, id, len(childIDs), l.child.name)
			}
			if len(childIDs) > 0 {
				subtree = append(subtree, levelIDs{level: l.child, ids: childIDs})
			}
			current = childIDs
		}

		for _, part := range subtree {
			var n int64
			if err := tx.Model(&models.AgentModel{}).Where(part.level.agentColumn+" IN ?", part.ids).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return apperrors.Conflict("%s %d is referenced by %d agent(s)", level.name, id, n)
			}
		}

		for i := len(subtree) - 1; i >= 0; i-- {
			part := subtree[i]
			if err := tx.Where("id IN ?", part.ids).Delete(part.level.newModel()).Error; err != nil {
				return err
			}
		}
		removed = subtree
		return nil
	})
	if err != nil {
		return apperrors.MapError(err)
	}

	if len(removed) > 1 {
		fields := []interface{}{"level", level.name, "id", id}
		for _, part := range removed[1:] {
			fields = append(fields, part.level.name+"_count", len(part.ids))
		}
		log.Info("Cascade delete", fields...)
	}
	return nil
}

// listOptions returns the dropdown rows of level scoped to parentID.
func listOptions(ctx context.Context, db *gorm.DB, level *geoLevel, parentID int) ([]dtos.GeoOption, error) {
	rows := []dtos.GeoOption{}
	q := db.WithContext(ctx).Model(level.newModel()).Select("id, name, code")
	if level.parentColumn != "" {
		q = q.Where(level.parentColumn+" = ?", parentID)
	}
	if err := q.Order("name, id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
