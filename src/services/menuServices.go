package services

import (
	"context"
	"strings"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/models"
	"gorm.io/gorm"
)

// unknownCategory is shown when a menu item's category row cannot be resolved.
const unknownCategory = "Unknown"

// MenuService reads menu aggregates. Writes go through MenuAggregateWriter.
type MenuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

func menuItemsWithCategoryName(db *gorm.DB) *gorm.DB {
	return db.Model(&models.MenuItemModel{}).
		Select("menu_items.*, COALESCE(categories.name, '" + unknownCategory + "') AS category_name").
		Joins("LEFT JOIN categories ON categories.id = menu_items.categories_id")
}

func applyMenuFilter(q *gorm.DB, filter dtos.MenuFilter) *gorm.DB {
	if filter.CategoryID != nil {
		q = q.Where("menu_items.categories_id = ?", *filter.CategoryID)
	}
	if ft := strings.TrimSpace(filter.FoodType); ft != "" {
		q = q.Where("menu_items.food_type = ?", strings.ToLower(ft))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		q = q.Where("LOWER(menu_items.name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	return applyStatusFilter(q, "menu_items.status", filter.Status)
}

// GetMenuItem returns one menu item with its variants and linked addon ids
func (s *MenuService) GetMenuItem(ctx context.Context, id int) (*dtos.MenuItemDTO, error) {
	return loadMenuAggregate(s.db.WithContext(ctx), id)
}

// ListMenuItems returns every matching menu item as a full aggregate
func (s *MenuService) ListMenuItems(ctx context.Context, filter dtos.MenuFilter) ([]dtos.MenuItemDTO, error) {
	tx := s.db.WithContext(ctx)
	items := []models.MenuItemModel{}
	q := applyMenuFilter(menuItemsWithCategoryName(tx), filter)
	if err := q.Order("menu_items.name, menu_items.id").Find(&items).Error; err != nil {
		return nil, err
	}
	return assembleAggregates(tx, items)
}

// ListMenuSummaries returns flat display rows with the category name and rate range
func (s *MenuService) ListMenuSummaries(ctx context.Context, filter dtos.MenuFilter) ([]dtos.MenuItemSummaryDTO, error) {
	aggregates, err := s.ListMenuItems(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([]dtos.MenuItemSummaryDTO, 0, len(aggregates))
	for _, a := range aggregates {
		row := dtos.MenuItemSummaryDTO{
			ID:           a.ID,
			Name:         a.Name,
			FoodType:     a.FoodType,
			CategoryName: a.CategoryName,
			VariantCount: len(a.Variants),
			Status:       a.Status,
		}
		for i, v := range a.Variants {
			if i == 0 || v.Rate < row.MinRate {
				row.MinRate = v.Rate
			}
			if i == 0 || v.Rate > row.MaxRate {
				row.MaxRate = v.Rate
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// loadMenuAggregate reads the three tables of one aggregate through tx.
func loadMenuAggregate(tx *gorm.DB, id int) (*dtos.MenuItemDTO, error) {
	items := []models.MenuItemModel{}
	if err := menuItemsWithCategoryName(tx).Where("menu_items.id = ?", id).Limit(1).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.NotFound("menu item %d not found", id)
	}
	out, err := assembleAggregates(tx, items)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// assembleAggregates attaches variants and addon ids to items with one query per child table.
func assembleAggregates(tx *gorm.DB, items []models.MenuItemModel) ([]dtos.MenuItemDTO, error) {
	out := make([]dtos.MenuItemDTO, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	var variants []models.MenuVariantModel
	if err := tx.Where("menu_id IN ?", ids).Order("id").Find(&variants).Error; err != nil {
		return nil, err
	}
	var links []models.MenuAddonModel
	if err := tx.Where("menu_id IN ?", ids).Order("addon_id").Find(&links).Error; err != nil {
		return nil, err
	}

	variantsByMenu := make(map[int][]models.MenuVariantModel, len(items))
	for _, v := range variants {
		variantsByMenu[v.MenuID] = append(variantsByMenu[v.MenuID], v)
	}
	addonsByMenu := make(map[int][]int, len(items))
	for _, l := range links {
		addonsByMenu[l.MenuID] = append(addonsByMenu[l.MenuID], l.AddonID)
	}

	for _, it := range items {
		dto := dtos.MenuItemDTO{
			MenuItemModel: it,
			Variants:      variantsByMenu[it.ID],
			Addons:        addonsByMenu[it.ID],
		}
		if dto.Variants == nil {
			dto.Variants = []models.MenuVariantModel{}
		}
		if dto.Addons == nil {
			dto.Addons = []int{}
		}
		out = append(out, dto)
	}
	return out, nil
}
