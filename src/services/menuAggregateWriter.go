package services

import (
	"context"
	"strings"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MenuAggregateWriter persists a menu item together with its variant rows and
// addon links. Every write runs in one transaction; any failure rolls back the
// parent row as well.
type MenuAggregateWriter struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewMenuAggregateWriter creates a new instance of MenuAggregateWriter
func NewMenuAggregateWriter(db *gorm.DB, logg *logger.Logger) *MenuAggregateWriter {
	return &MenuAggregateWriter{db: db, log: logg.With("service", "MenuAggregateWriter")}
}

// CreateMenuItem inserts the parent row, then its variants, then its addon links,
// and returns the assembled aggregate.
func (w *MenuAggregateWriter) CreateMenuItem(ctx context.Context, req *dtos.MenuItemRequest) (*dtos.MenuItemDTO, error) {
	normalizeMenuRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	links, err := PlanAddonLinks(nil, req.Addons)
	if err != nil {
		return nil, err
	}

	var out *dtos.MenuItemDTO
	var variants VariantPlan
	err = w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(tx, &models.CategoryModel{}, req.CategoriesID, "category"); err != nil {
			return err
		}
		if err := requireAddons(tx, links.Insert); err != nil {
			return err
		}

		item := models.MenuItemModel{
			Name:            req.Name,
			Description:     req.Description,
			FoodType:        req.FoodType,
			CategoriesID:    req.CategoriesID,
			PreparationTime: req.PreparationTime,
			Status:          statusOrDefault(req.Status),
			Audit:           models.Audit{CreatedByID: req.CreatedByID, UpdatedByID: req.CreatedByID},
		}
		if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
			return apperrors.Integrity("insert menu item", err)
		}

		var err error
		if variants, err = PlanVariants(item.ID, nil, req.Variants); err != nil {
			return err
		}
		if err := applyVariantPlan(tx, item.ID, variants); err != nil {
			return err
		}
		if err := applyAddonLinkPlan(tx, item.ID, links); err != nil {
			return err
		}
		out, err = loadMenuAggregate(tx, item.ID)
		return err
	})
	if err != nil {
		return nil, w.fail("create", 0, err)
	}

	w.log.Info("Menu item created",
		"menu_id", out.ID,
		"variants_inserted", len(variants.Insert),
		"addons_linked", len(links.Insert),
	)
	return out, nil
}

// UpdateMenuItem overwrites the parent row and reconciles variants by row id and
// addon links by addon id, touching only rows that differ.
func (w *MenuAggregateWriter) UpdateMenuItem(ctx context.Context, id int, req *dtos.MenuItemRequest) (*dtos.MenuItemDTO, error) {
	normalizeMenuRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var out *dtos.MenuItemDTO
	var variants VariantPlan
	var links AddonLinkPlan
	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := firstByID[models.MenuItemModel](tx, id, "menu item")
		if err != nil {
			return err
		}
		if err := requireRef(tx, &models.CategoryModel{}, req.CategoriesID, "category"); err != nil {
			return err
		}

		var storedVariants []models.MenuVariantModel
		if err := tx.Where("menu_id = ?", id).Order("id").Find(&storedVariants).Error; err != nil {
			return err
		}
		var storedLinks []models.MenuAddonModel
		if err := tx.Where("menu_id = ?", id).Order("addon_id").Find(&storedLinks).Error; err != nil {
			return err
		}

		if variants, err = PlanVariants(id, storedVariants, req.Variants); err != nil {
			return err
		}
		if links, err = PlanAddonLinks(storedLinks, req.Addons); err != nil {
			return err
		}
		if err := requireAddons(tx, links.Insert); err != nil {
			return err
		}

		item.Name = req.Name
		item.Description = req.Description
		item.FoodType = req.FoodType
		item.CategoriesID = req.CategoriesID
		item.PreparationTime = req.PreparationTime
		if req.Status != nil {
			item.Status = *req.Status
		}
		item.UpdatedByID = req.UpdatedByID
		if err := tx.Omit(clause.Associations).Save(item).Error; err != nil {
			return apperrors.Integrity("update menu item", err)
		}

		if err := applyVariantPlan(tx, id, variants); err != nil {
			return err
		}
		if err := applyAddonLinkPlan(tx, id, links); err != nil {
			return err
		}
		out, err = loadMenuAggregate(tx, id)
		return err
	})
	if err != nil {
		return nil, w.fail("update", id, err)
	}

	w.log.Info("Menu item updated",
		"menu_id", id,
		"variants_inserted", len(variants.Insert),
		"variants_updated", len(variants.Update),
		"variants_deleted", len(variants.Delete),
		"addons_linked", len(links.Insert),
		"addons_unlinked", len(links.Delete),
	)
	return out, nil
}

// DeleteMenuItem removes the menu item with its variants and addon links.
func (w *MenuAggregateWriter) DeleteMenuItem(ctx context.Context, id int) error {
	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := firstByID[models.MenuItemModel](tx, id, "menu item"); err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", id).Delete(&models.MenuAddonModel{}).Error; err != nil {
			return apperrors.Integrity("delete addon links", err)
		}
		if err := tx.Where("menu_id = ?", id).Delete(&models.MenuVariantModel{}).Error; err != nil {
			return apperrors.Integrity("delete variants", err)
		}
		if err := tx.Delete(&models.MenuItemModel{}, id).Error; err != nil {
			return apperrors.Integrity("delete menu item", err)
		}
		return nil
	})
	if err != nil {
		return w.fail("delete", id, err)
	}
	w.log.Info("Menu item deleted", "menu_id", id)
	return nil
}

func (w *MenuAggregateWriter) fail(op string, id int, err error) error {
	err = apperrors.MapError(err)
	if !apperrors.IsDomain(err) {
		err = apperrors.Integrity("menu "+op, err)
	}
	w.log.Warn("Menu aggregate write rolled back", "op", op, "menu_id", id, "error", err)
	return err
}

func applyVariantPlan(tx *gorm.DB, menuID int, plan VariantPlan) error {
	if len(plan.Delete) > 0 {
		if err := tx.Where("menu_id = ? AND id IN ?", menuID, plan.Delete).Delete(&models.MenuVariantModel{}).Error; err != nil {
			return apperrors.Integrity("delete variants", err)
		}
	}
	for _, v := range plan.Update {
		err := tx.Model(&models.MenuVariantModel{}).
			Where("id = ? AND menu_id = ?", v.ID, menuID).
			Updates(map[string]any{"variant_type": v.VariantType, "rate": v.Rate}).Error
		if err != nil {
			return apperrors.Integrity("update variant", err)
		}
	}
	if len(plan.Insert) > 0 {
		rows := make([]models.MenuVariantModel, len(plan.Insert))
		for i, v := range plan.Insert {
			v.MenuID = menuID
			rows[i] = v
		}
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return apperrors.Integrity("insert variants", err)
		}
	}
	return nil
}

func applyAddonLinkPlan(tx *gorm.DB, menuID int, plan AddonLinkPlan) error {
	if len(plan.Delete) > 0 {
		if err := tx.Where("menu_id = ? AND addon_id IN ?", menuID, plan.Delete).Delete(&models.MenuAddonModel{}).Error; err != nil {
			return apperrors.Integrity("delete addon links", err)
		}
	}
	if len(plan.Insert) > 0 {
		rows := make([]models.MenuAddonModel, 0, len(plan.Insert))
		for _, addonID := range plan.Insert {
			rows = append(rows, models.MenuAddonModel{MenuID: menuID, AddonID: addonID})
		}
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return apperrors.Integrity("insert addon links", err)
		}
	}
	return nil
}

// requireAddons fails with a ReferenceError naming the first addon id without a row.
func requireAddons(tx *gorm.DB, addonIDs []int) error {
	if len(addonIDs) == 0 {
		return nil
	}
	var found []int
	if err := tx.Model(&models.AddonModel{}).Where("id IN ?", addonIDs).Pluck("id", &found).Error; err != nil {
		return err
	}
	present := make(map[int]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	for _, id := range addonIDs {
		if !present[id] {
			return apperrors.Reference("addon %d does not exist", id)
		}
	}
	return nil
}

func normalizeMenuRequest(req *dtos.MenuItemRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.FoodType = strings.ToLower(strings.TrimSpace(req.FoodType))
	for i := range req.Variants {
		req.Variants[i].VariantType = strings.TrimSpace(req.Variants[i].VariantType)
	}
}
