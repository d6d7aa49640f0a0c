package services

import (
	"context"
	"testing"

	"github.com/hotelops/backoffice/src/db"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := db.GormConfig()
	cfg.Logger = cfg.Logger.LogMode(gormLogger.Silent)
	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// One connection keeps the in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func intPtr(v int) *int { return &v }

// geoFixture is one complete country > state > district > zone chain.
type geoFixture struct {
	country  *models.CountryModel
	state    *models.StateModel
	district *models.DistrictModel
	zone     *models.ZoneModel
}

func seedGeo(t *testing.T, gdb *gorm.DB, suffix string) geoFixture {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	country, err := NewCountryService(gdb, log).CreateCountry(ctx, &dtos.CountryRequest{Name: "Country " + suffix, Code: "C" + suffix})
	if err != nil {
		t.Fatalf("create country: %v", err)
	}
	state, err := NewStateService(gdb, log).CreateState(ctx, &dtos.StateRequest{Name: "State " + suffix, Code: "S" + suffix, CountryID: country.ID})
	if err != nil {
		t.Fatalf("create state: %v", err)
	}
	district, err := NewDistrictService(gdb, log).CreateDistrict(ctx, &dtos.DistrictRequest{Name: "District " + suffix, Code: "DST" + suffix, StateID: state.ID})
	if err != nil {
		t.Fatalf("create district: %v", err)
	}
	zone, err := NewZoneService(gdb, log).CreateZone(ctx, &dtos.ZoneRequest{Name: "Zone " + suffix, Code: "Z" + suffix, DistrictID: district.ID})
	if err != nil {
		t.Fatalf("create zone: %v", err)
	}
	return geoFixture{country: country, state: state, district: district, zone: zone}
}

// catalogFixture holds a category and two addons measured in one unit.
type catalogFixture struct {
	category *models.CategoryModel
	addons   []*models.AddonModel
}

func seedCatalog(t *testing.T, gdb *gorm.DB) catalogFixture {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	category, err := NewCategoryService(gdb).CreateCategory(ctx, &dtos.CategoryRequest{Name: "Mains"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	unit, err := NewUnitService(gdb).CreateUnit(ctx, &dtos.UnitRequest{Name: "Piece", ShortName: "pc"})
	if err != nil {
		t.Fatalf("create unit: %v", err)
	}
	addons := NewAddonService(gdb, log)
	var out []*models.AddonModel
	for _, name := range []string{"Extra Cheese", "Olives"} {
		a, err := addons.CreateAddon(ctx, &dtos.AddonRequest{Name: name, Rate: 20, UnitID: unit.ID, UnitConversion: 1})
		if err != nil {
			t.Fatalf("create addon %s: %v", name, err)
		}
		out = append(out, a)
	}
	return catalogFixture{category: category, addons: out}
}

func countRows(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := gdb.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
