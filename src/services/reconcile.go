package services

import (
	"fmt"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/models"
)

// VariantPlan is the minimal set of statements that turns the stored variants
// of one menu item into the submitted list.
type VariantPlan struct {
	Insert []models.MenuVariantModel
	Update []models.MenuVariantModel
	Delete []int
}

// AddonLinkPlan lists addon ids to link and to unlink. Links are keyed by the
// (menu, addon) pair, so their row ids never matter.
type AddonLinkPlan struct {
	Insert []int
	Delete []int
}

// PlanVariants reconciles by row identity: submitted ids update their row when
// something changed, entries without id are inserted and stored rows missing
// from the submission are deleted. An id owned by another menu item is a
// ReferenceError; an id listed twice is a ValidationError.
func PlanVariants(menuID int, existing []models.MenuVariantModel, submitted []dtos.VariantInput) (VariantPlan, error) {
	plan := VariantPlan{}
	stored := make(map[int]models.MenuVariantModel, len(existing))
	for _, v := range existing {
		stored[v.ID] = v
	}

	seen := make(map[int]bool, len(submitted))
	for i, in := range submitted {
		if in.ID == nil {
			plan.Insert = append(plan.Insert, models.MenuVariantModel{
				MenuID:      menuID,
				VariantType: in.VariantType,
				Rate:        in.Rate,
			})
			continue
		}

		id := *in.ID
		if seen[id] {
			return VariantPlan{}, apperrors.Validation(fmt.Sprintf("variants[%d].id", i), fmt.Sprintf("variant %d is listed more than once", id))
		}
		seen[id] = true

		cur, ok := stored[id]
		if !ok {
			return VariantPlan{}, apperrors.Reference("variant %d does not belong to menu item %d", id, menuID)
		}
		if cur.VariantType != in.VariantType || cur.Rate != in.Rate {
			cur.VariantType = in.VariantType
			cur.Rate = in.Rate
			plan.Update = append(plan.Update, cur)
		}
	}

	for _, v := range existing {
		if !seen[v.ID] {
			plan.Delete = append(plan.Delete, v.ID)
		}
	}
	return plan, nil
}

// PlanAddonLinks diffs the stored links against the submitted addon ids.
// A repeated addon id is a ConflictError.
func PlanAddonLinks(existing []models.MenuAddonModel, submitted []int) (AddonLinkPlan, error) {
	plan := AddonLinkPlan{}
	linked := make(map[int]bool, len(existing))
	for _, l := range existing {
		linked[l.AddonID] = true
	}

	wanted := make(map[int]bool, len(submitted))
	for _, addonID := range submitted {
		if wanted[addonID] {
			return AddonLinkPlan{}, apperrors.Conflict("addon %d is submitted more than once", addonID)
		}
		wanted[addonID] = true
		if !linked[addonID] {
			plan.Insert = append(plan.Insert, addonID)
		}
	}

	for _, l := range existing {
		if !wanted[l.AddonID] {
			plan.Delete = append(plan.Delete, l.AddonID)
		}
	}
	return plan, nil
}
