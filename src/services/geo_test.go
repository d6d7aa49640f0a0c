package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/models"
)

func TestStateRoundTrip(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	countries := NewCountryService(gdb, logger.Nop())
	states := NewStateService(gdb, logger.Nop())

	country, err := countries.CreateCountry(ctx, &dtos.CountryRequest{Name: "Testland", Code: "tl"})
	if err != nil {
		t.Fatalf("CreateCountry: %v", err)
	}
	if country.ID == 0 || country.Code != "TL" || country.Status != models.StatusActive {
		t.Fatalf("unexpected country: %+v", country)
	}

	cases := []struct {
		name string
		code string
	}{
		{"TestState", "TS"},
		{"Other State", "OS"},
	}
	for _, tt := range cases {
		created, err := states.CreateState(ctx, &dtos.StateRequest{Name: tt.name, Code: tt.code, CountryID: country.ID, AuditInput: dtos.AuditInput{CreatedByID: intPtr(7)}})
		if err != nil {
			t.Fatalf("CreateState(%s): %v", tt.name, err)
		}
		got, err := states.GetStateByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetStateByID: %v", err)
		}
		if got.Name != tt.name || got.Code != tt.code || got.CountryID != country.ID {
			t.Fatalf("round trip mismatch: got %+v", got)
		}
		if got.CountryName != "Testland" {
			t.Fatalf("country name = %q", got.CountryName)
		}
		if got.CreatedByID == nil || *got.CreatedByID != 7 {
			t.Fatalf("created_by_id not persisted: %+v", got.CreatedByID)
		}
	}
}

func TestCreateDistrictDanglingState(t *testing.T) {
	gdb := newTestDB(t)
	districts := NewDistrictService(gdb, logger.Nop())

	_, err := districts.CreateDistrict(context.Background(), &dtos.DistrictRequest{Name: "Nowhere", Code: "NWHR", StateID: 999})
	if !errors.Is(err, apperrors.ErrReference) {
		t.Fatalf("expected reference error, got %v", err)
	}
	if n := countRows(t, gdb, &models.DistrictModel{}); n != 0 {
		t.Fatalf("expected no district rows, got %d", n)
	}
}

func TestGeoValidation(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	fx := seedGeo(t, gdb, "A")

	cases := []struct {
		name  string
		run   func() error
		field string
	}{
		{"state code too long", func() error {
			_, err := NewStateService(gdb, logger.Nop()).CreateState(ctx, &dtos.StateRequest{Name: "X", Code: "ABC", CountryID: fx.country.ID})
			return err
		}, "code"},
		{"district code too short", func() error {
			_, err := NewDistrictService(gdb, logger.Nop()).CreateDistrict(ctx, &dtos.DistrictRequest{Name: "X", Code: "AB", StateID: fx.state.ID})
			return err
		}, "code"},
		{"zone code too long", func() error {
			_, err := NewZoneService(gdb, logger.Nop()).CreateZone(ctx, &dtos.ZoneRequest{Name: "X", Code: "ABCD", DistrictID: fx.district.ID})
			return err
		}, "code"},
		{"country name missing", func() error {
			_, err := NewCountryService(gdb, logger.Nop()).CreateCountry(ctx, &dtos.CountryRequest{Name: "  ", Code: "XX"})
			return err
		}, "name"},
		{"bad status", func() error {
			_, err := NewCountryService(gdb, logger.Nop()).CreateCountry(ctx, &dtos.CountryRequest{Name: "Y", Code: "YY", Status: intPtr(3)})
			return err
		}, "status"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			var verr *apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Fields[0].Field != tt.field {
				t.Fatalf("field = %q, want %q", verr.Fields[0].Field, tt.field)
			}
		})
	}
}

func TestStateCodeUniquePerCountry(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	a := seedGeo(t, gdb, "A")
	b := seedGeo(t, gdb, "B")
	states := NewStateService(gdb, logger.Nop())

	if _, err := states.CreateState(ctx, &dtos.StateRequest{Name: "Dup", Code: a.state.Code, CountryID: a.country.ID}); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict in same country, got %v", err)
	}
	if _, err := states.CreateState(ctx, &dtos.StateRequest{Name: "Same code elsewhere", Code: a.state.Code, CountryID: b.country.ID}); err != nil {
		t.Fatalf("same code under another country should be allowed: %v", err)
	}
}

func TestUpdateStateToMissingCountry(t *testing.T) {
	gdb := newTestDB(t)
	fx := seedGeo(t, gdb, "A")
	states := NewStateService(gdb, logger.Nop())

	_, err := states.UpdateState(context.Background(), fx.state.ID, &dtos.StateRequest{Name: "Moved", Code: "SA", CountryID: 4242})
	if !errors.Is(err, apperrors.ErrReference) {
		t.Fatalf("expected reference error, got %v", err)
	}
	got, err := states.GetStateByID(context.Background(), fx.state.ID)
	if err != nil {
		t.Fatalf("GetStateByID: %v", err)
	}
	if got.CountryID != fx.country.ID || got.Name != fx.state.Name {
		t.Fatalf("state changed after failed update: %+v", got)
	}
}

func TestDeleteCountryWithStates(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	countries := NewCountryService(gdb, logger.Nop())
	states := NewStateService(gdb, logger.Nop())

	country, err := countries.CreateCountry(ctx, &dtos.CountryRequest{Name: "Testland", Code: "TL"})
	if err != nil {
		t.Fatalf("CreateCountry: %v", err)
	}
	state, err := states.CreateState(ctx, &dtos.StateRequest{Name: "TestState", Code: "TS", CountryID: country.ID})
	if err != nil {
		t.Fatalf("CreateState: %v", err)
	}

	if err := countries.DeleteCountry(ctx, country.ID, false); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if _, err := countries.GetCountryByID(ctx, country.ID); err != nil {
		t.Fatalf("country should remain: %v", err)
	}
	if _, err := states.GetStateByID(ctx, state.ID); err != nil {
		t.Fatalf("state should remain: %v", err)
	}

	if err := states.DeleteState(ctx, state.ID, false); err != nil {
		t.Fatalf("DeleteState: %v", err)
	}
	if err := countries.DeleteCountry(ctx, country.ID, false); err != nil {
		t.Fatalf("DeleteCountry: %v", err)
	}
	if _, err := countries.GetCountryByID(ctx, country.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestDeleteCountryCascade(t *testing.T) {
	gdb := newTestDB(t)
	fx := seedGeo(t, gdb, "A")
	other := seedGeo(t, gdb, "B")

	if err := NewCountryService(gdb, logger.Nop()).DeleteCountry(context.Background(), fx.country.ID, true); err != nil {
		t.Fatalf("cascade delete: %v", err)
	}
	for _, tt := range []struct {
		model any
		want  int64
	}{
		{&models.CountryModel{}, 1},
		{&models.StateModel{}, 1},
		{&models.DistrictModel{}, 1},
		{&models.ZoneModel{}, 1},
	} {
		if n := countRows(t, gdb, tt.model); n != tt.want {
			t.Fatalf("%T rows = %d, want %d", tt.model, n, tt.want)
		}
	}
	if _, err := NewZoneService(gdb, logger.Nop()).GetZoneByID(context.Background(), other.zone.ID); err != nil {
		t.Fatalf("unrelated zone removed: %v", err)
	}
}

func TestDeleteGeoBlockedByAgent(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	fx := seedGeo(t, gdb, "A")

	_, err := NewAgentService(gdb).CreateAgent(ctx, &dtos.AgentRequest{
		Name: "Ravi", Phone: "12345",
		CountryID: fx.country.ID, StateID: fx.state.ID, DistrictID: fx.district.ID, ZoneID: fx.zone.ID,
	})
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}

	if err := NewCountryService(gdb, logger.Nop()).DeleteCountry(ctx, fx.country.ID, true); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict from agent reference, got %v", err)
	}
	if err := NewZoneService(gdb, logger.Nop()).DeleteZone(ctx, fx.zone.ID); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict deleting referenced zone, got %v", err)
	}
	if n := countRows(t, gdb, &models.ZoneModel{}); n != 1 {
		t.Fatalf("zone rows = %d, want 1", n)
	}
}

func TestDeleteMissingGeoRow(t *testing.T) {
	gdb := newTestDB(t)
	err := NewDistrictService(gdb, logger.Nop()).DeleteDistrict(context.Background(), 77, false)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListStatesByParent(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	fx := seedGeo(t, gdb, "A")
	states := NewStateService(gdb, logger.Nop())

	for _, req := range []dtos.StateRequest{
		{Name: "Zeta", Code: "ZE", CountryID: fx.country.ID},
		{Name: "Alpha", Code: "AL", CountryID: fx.country.ID, Status: intPtr(models.StatusInactive)},
	} {
		req := req
		if _, err := states.CreateState(ctx, &req); err != nil {
			t.Fatalf("CreateState: %v", err)
		}
	}

	got, err := states.ListStates(ctx, dtos.GeoFilter{ParentID: &fx.country.ID})
	if err != nil {
		t.Fatalf("ListStates: %v", err)
	}
	var names []string
	for _, s := range got {
		names = append(names, s.Name)
	}
	want := []string{"Alpha", "State A", "Zeta"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}

	active, err := states.ListStates(ctx, dtos.GeoFilter{ParentID: &fx.country.ID, Status: intPtr(models.StatusActive)})
	if err != nil {
		t.Fatalf("ListStates(active): %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active states = %d, want 2", len(active))
	}

	empty, err := states.ListStates(ctx, dtos.GeoFilter{ParentID: intPtr(999)})
	if err != nil {
		t.Fatalf("ListStates(empty): %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}
