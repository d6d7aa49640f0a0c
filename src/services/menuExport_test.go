package services

import (
	"context"
	"testing"

	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/logger"
	excelize "github.com/xuri/excelize/v2"
)

func TestExportMenuWorkbook(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	fx := seedCatalog(t, gdb)
	req := pizzaRequest(fx)
	req.Variants = append(req.Variants, dtos.VariantInput{VariantType: "Large", Rate: 250})
	if _, err := NewMenuAggregateWriter(gdb, logger.Nop()).CreateMenuItem(ctx, req); err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}

	buf, err := NewMenuService(gdb).ExportMenu(ctx, dtos.MenuFilter{})
	if err != nil {
		t.Fatalf("ExportMenu: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	menuRows, err := f.GetRows(menuSheet)
	if err != nil {
		t.Fatalf("GetRows(%s): %v", menuSheet, err)
	}
	if len(menuRows) != 2 || menuRows[1][1] != "Pizza" || menuRows[1][3] != "Mains" || menuRows[1][5] != "Active" {
		t.Fatalf("menu rows = %v", menuRows)
	}

	variantRows, err := f.GetRows(variantSheet)
	if err != nil {
		t.Fatalf("GetRows(%s): %v", variantSheet, err)
	}
	if len(variantRows) != 3 || variantRows[1][3] != "Small" || variantRows[2][3] != "Large" {
		t.Fatalf("variant rows = %v", variantRows)
	}
}
