package dtos

import "github.com/hotelops/backoffice/src/models"

// VariantInput is one submitted variant. ID is set for rows that already exist.
type VariantInput struct {
	ID          *int    `json:"id" validate:"omitempty,gt=0"`
	VariantType string  `json:"variant_type" validate:"required,max=100"`
	Rate        float64 `json:"rate" validate:"gt=0"`
}

// MenuItemRequest is the full desired state of a menu aggregate.
type MenuItemRequest struct {
	Name            string         `json:"name" validate:"required,max=255"`
	Description     string         `json:"description"`
	FoodType        string         `json:"food_type" validate:"required,oneof=veg nonveg"`
	CategoriesID    int            `json:"categories_id" validate:"required,gt=0"`
	PreparationTime int            `json:"preparation_time" validate:"gte=0"`
	Status          *int           `json:"status" validate:"omitempty,oneof=0 1"`
	Variants        []VariantInput `json:"variants" validate:"dive"`
	Addons          []int          `json:"addons" validate:"dive,gt=0"`
	AuditInput
}

// MenuItemDTO is the assembled aggregate: parent row, its variants and linked addon ids.
type MenuItemDTO struct {
	models.MenuItemModel
	Variants []models.MenuVariantModel `json:"variants"`
	Addons   []int                     `json:"addons"`
}

// MenuItemSummaryDTO is a flat display row.
type MenuItemSummaryDTO struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	FoodType     string  `json:"food_type"`
	CategoryName string  `json:"category_name"`
	VariantCount int     `json:"variant_count"`
	MinRate      float64 `json:"min_rate"`
	MaxRate      float64 `json:"max_rate"`
	Status       int     `json:"status"`
}

type MenuFilter struct {
	CategoryID *int
	FoodType   string
	Status     *int
	Search     string
}
