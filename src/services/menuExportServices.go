package services

import (
	"bytes"
	"context"

	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/models"
	excelize "github.com/xuri/excelize/v2"
)

const (
	menuSheet    = "Menu"
	variantSheet = "Variants"
)

var (
	menuHeader    = []any{"ID", "Name", "Food Type", "Category", "Preparation Time", "Status", "Variants", "Addons"}
	variantHeader = []any{"Menu ID", "Menu Name", "Variant ID", "Variant Type", "Rate"}
)

// ExportMenu renders the filtered menu aggregates as an xlsx workbook with one
// row per menu item and one row per variant.
func (s *MenuService) ExportMenu(ctx context.Context, filter dtos.MenuFilter) (*bytes.Buffer, error) {
	items, err := s.ListMenuItems(ctx, filter)
	if err != nil {
		return nil, err
	}
	return buildMenuWorkbook(items)
}

func buildMenuWorkbook(items []dtos.MenuItemDTO) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", menuSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(variantSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(menuSheet, "A1", &menuHeader); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(variantSheet, "A1", &variantHeader); err != nil {
		return nil, err
	}

	variantRow := 2
	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{it.ID, it.Name, it.FoodType, it.CategoryName, it.PreparationTime, statusLabel(it.Status), len(it.Variants), len(it.Addons)}
		if err := f.SetSheetRow(menuSheet, cell, &row); err != nil {
			return nil, err
		}

		for _, v := range it.Variants {
			cell, err := excelize.CoordinatesToCellName(1, variantRow)
			if err != nil {
				return nil, err
			}
			vrow := []any{it.ID, it.Name, v.ID, v.VariantType, v.Rate}
			if err := f.SetSheetRow(variantSheet, cell, &vrow); err != nil {
				return nil, err
			}
			variantRow++
		}
	}

	return f.WriteToBuffer()
}

func statusLabel(status int) string {
	if status == models.StatusActive {
		return "Active"
	}
	return "Inactive"
}
