package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hotelops/backoffice/src/config"
	"github.com/hotelops/backoffice/src/db"
	"github.com/hotelops/backoffice/src/logger"
	"github.com/hotelops/backoffice/src/seed"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const testSecret = "router-test-secret"

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gcfg := db.GormConfig()
	gcfg.Logger = gcfg.Logger.LogMode(gormLogger.Silent)
	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), gcfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Host: ":0", CORSOrigins: []string{"http://localhost:3000"}},
		DB:     config.DBConfig{QueryTimeout: 5 * time.Second},
		Auth:   config.AuthConfig{Secret: testSecret, TokenTTL: time.Hour},
		Seed:   config.SeedConfig{Enabled: true, AdminUsername: "admin", AdminPassword: "admin-pass"},
	}
	if err := seed.Seed(gdb, cfg.Seed, logger.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return &apiClient{t: t, router: NewRouter(gdb, cfg, logger.Nop())}
}

func (c *apiClient) do(method, path string, body any) (int, []byte) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func (c *apiClient) expect(method, path string, body any, status int, out any) {
	c.t.Helper()
	code, raw := c.do(method, path, body)
	if code != status {
		c.t.Fatalf("%s %s: status = %d, want %d: %s", method, path, code, status, raw)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			c.t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
}

func (c *apiClient) login() {
	c.t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	c.expect(http.MethodPost, "/users/login", map[string]string{"username": "admin", "password": "admin-pass"}, http.StatusOK, &resp)
	if resp.Token == "" {
		c.t.Fatalf("empty token")
	}
	c.token = resp.Token
}

type idRow struct {
	ID int `json:"id"`
}

func TestHealthAndAuth(t *testing.T) {
	api := newTestAPI(t)

	var health map[string]string
	api.expect(http.MethodGet, "/health", nil, http.StatusOK, &health)
	if health["status"] != "ok" {
		t.Fatalf("health = %v", health)
	}

	api.expect(http.MethodGet, "/countries", nil, http.StatusUnauthorized, nil)
	api.expect(http.MethodPost, "/users/login", map[string]string{"username": "admin", "password": "wrong"}, http.StatusUnauthorized, nil)

	api.login()
	api.expect(http.MethodGet, "/countries", nil, http.StatusOK, nil)
}

func TestGeoScenario(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var country idRow
	api.expect(http.MethodPost, "/countries", map[string]any{"name": "Testland", "code": "TL"}, http.StatusCreated, &country)
	if country.ID == 0 {
		t.Fatalf("country id not generated")
	}

	var state struct {
		ID          int    `json:"id"`
		CountryName string `json:"country_name"`
		CreatedByID *int   `json:"created_by_id"`
	}
	api.expect(http.MethodPost, "/states", map[string]any{"name": "TestState", "code": "TS", "country_id": country.ID}, http.StatusCreated, &state)
	if state.CountryName != "Testland" {
		t.Fatalf("country_name = %q", state.CountryName)
	}
	if state.CreatedByID == nil {
		t.Fatalf("created_by_id should default to the authenticated user")
	}

	var conflict struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	api.expect(http.MethodDelete, fmt.Sprintf("/countries/%d", country.ID), nil, http.StatusConflict, &conflict)
	if conflict.Error.Code != "conflict" {
		t.Fatalf("error code = %q", conflict.Error.Code)
	}

	api.expect(http.MethodDelete, fmt.Sprintf("/states/%d", state.ID), nil, http.StatusOK, nil)
	api.expect(http.MethodDelete, fmt.Sprintf("/countries/%d", country.ID), nil, http.StatusOK, nil)
	api.expect(http.MethodGet, fmt.Sprintf("/countries/%d", country.ID), nil, http.StatusNotFound, nil)
}

func TestGeoRequestErrors(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var verr struct {
		Error struct {
			Code   string `json:"code"`
			Fields []struct {
				Field string `json:"field"`
			} `json:"fields"`
		} `json:"error"`
	}
	api.expect(http.MethodPost, "/states", map[string]any{"name": "Bad", "code": "TOO", "country_id": 1}, http.StatusBadRequest, &verr)
	if verr.Error.Code != "validation_error" || len(verr.Error.Fields) == 0 || verr.Error.Fields[0].Field != "code" {
		t.Fatalf("error = %+v", verr.Error)
	}

	api.expect(http.MethodPost, "/districts", map[string]any{"name": "Ghost", "code": "GHST", "state_id": 404}, http.StatusBadRequest, nil)
	api.expect(http.MethodGet, "/zones/abc", nil, http.StatusBadRequest, nil)
	api.expect(http.MethodGet, "/states?country_id=x", nil, http.StatusBadRequest, nil)

	code, _ := api.do(http.MethodPost, "/countries", nil)
	if code != http.StatusBadRequest {
		t.Fatalf("empty body status = %d", code)
	}
}

func TestMenuScenario(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var category, unit idRow
	api.expect(http.MethodPost, "/categories", map[string]any{"name": "Mains"}, http.StatusCreated, &category)
	var units []idRow
	api.expect(http.MethodGet, "/units", nil, http.StatusOK, &units)
	if len(units) == 0 {
		t.Fatalf("seeded units missing")
	}
	unit = units[0]

	var addon1, addon2 idRow
	api.expect(http.MethodPost, "/addons", map[string]any{"name": "Cheese", "rate": 20, "unit_id": unit.ID, "unit_conversion": 1}, http.StatusCreated, &addon1)
	api.expect(http.MethodPost, "/addons", map[string]any{"name": "Olives", "rate": 15, "unit_id": unit.ID, "unit_conversion": 1}, http.StatusCreated, &addon2)

	type menuResp struct {
		ID       int `json:"id"`
		Variants []struct {
			ID   int     `json:"id"`
			Rate float64 `json:"rate"`
		} `json:"variants"`
		Addons []int `json:"addons"`
	}

	var created menuResp
	api.expect(http.MethodPost, "/menumaster", map[string]any{
		"name":          "Pizza",
		"food_type":     "veg",
		"categories_id": category.ID,
		"variants":      []map[string]any{{"variant_type": "Small", "rate": 100}},
		"addons":        []int{addon1.ID, addon2.ID},
	}, http.StatusCreated, &created)

	var got menuResp
	path := fmt.Sprintf("/menumaster/%d", created.ID)
	api.expect(http.MethodGet, path, nil, http.StatusOK, &got)
	if len(got.Variants) != 1 || len(got.Addons) != 2 {
		t.Fatalf("aggregate = %+v", got)
	}
	variantID := got.Variants[0].ID

	api.expect(http.MethodPut, path, map[string]any{
		"name":          "Pizza",
		"food_type":     "veg",
		"categories_id": category.ID,
		"variants":      []map[string]any{{"id": variantID, "variant_type": "Small", "rate": 120}},
		"addons":        []int{addon1.ID},
	}, http.StatusOK, nil)

	api.expect(http.MethodGet, path, nil, http.StatusOK, &got)
	if len(got.Variants) != 1 || got.Variants[0].ID != variantID || got.Variants[0].Rate != 120 {
		t.Fatalf("variants = %+v", got.Variants)
	}
	if len(got.Addons) != 1 || got.Addons[0] != addon1.ID {
		t.Fatalf("addons = %v", got.Addons)
	}

	api.expect(http.MethodPost, "/menumaster", map[string]any{
		"name": "Twice", "food_type": "veg", "categories_id": category.ID,
		"addons": []int{addon1.ID, addon1.ID},
	}, http.StatusConflict, nil)

	var summaries []struct {
		Name     string  `json:"name"`
		MinRate  float64 `json:"min_rate"`
		Category string  `json:"category_name"`
	}
	api.expect(http.MethodGet, "/menumaster/summaries?search=piz", nil, http.StatusOK, &summaries)
	if len(summaries) != 1 || summaries[0].MinRate != 120 || summaries[0].Category != "Mains" {
		t.Fatalf("summaries = %+v", summaries)
	}

	code, raw := api.do(http.MethodGet, "/menumaster/export", nil)
	if code != http.StatusOK || len(raw) == 0 {
		t.Fatalf("export status = %d, %d bytes", code, len(raw))
	}

	api.expect(http.MethodDelete, path, nil, http.StatusOK, nil)
	api.expect(http.MethodGet, path, nil, http.StatusNotFound, nil)
}

func TestSelectionEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var country, state idRow
	api.expect(http.MethodPost, "/countries", map[string]any{"name": "Testland", "code": "TL"}, http.StatusCreated, &country)
	api.expect(http.MethodPost, "/states", map[string]any{"name": "TestState", "code": "TS", "country_id": country.ID}, http.StatusCreated, &state)

	var resp struct {
		FieldsToClear []string `json:"fields_to_clear"`
		Options       []idRow  `json:"options"`
	}
	api.expect(http.MethodPost, "/geo/selection/resolve", map[string]any{
		"changed_field": "country",
		"new_value":     country.ID,
		"selection":     map[string]int{"state_id": 8, "district_id": 9},
	}, http.StatusOK, &resp)
	if len(resp.FieldsToClear) != 3 || len(resp.Options) != 1 || resp.Options[0].ID != state.ID {
		t.Fatalf("resolve = %+v", resp)
	}

	api.expect(http.MethodPost, "/geo/selection/resolve", map[string]any{"changed_field": "planet", "new_value": 1}, http.StatusBadRequest, nil)
}

func TestTokenFromOtherSecretRejected(t *testing.T) {
	api := newTestAPI(t)
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 1}).SignedString([]byte("not-the-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	api.token = forged
	api.expect(http.MethodGet, "/menumaster", nil, http.StatusUnauthorized, nil)
}
