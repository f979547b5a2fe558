package web_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/artpar/offerview/adapters/clock"
	"github.com/artpar/offerview/adapters/hasher"
	"github.com/artpar/offerview/adapters/memory"
	"github.com/artpar/offerview/app"
	"github.com/artpar/offerview/core/catalog"
	"github.com/artpar/offerview/core/registry"
	"github.com/artpar/offerview/core/render"
	"github.com/artpar/offerview/domain/service"
	"github.com/artpar/offerview/web"
)

const adminToken = "test-admin-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cat := catalog.NewBuiltIn()
	reg := registry.New(cat, catalog.DefaultDefinitions(), zerolog.Nop())
	svc := app.NewRegistryService(
		reg,
		memory.NewKVStore(),
		clock.NewFake(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)),
		zerolog.Nop(),
	)

	h := web.NewHandler(web.Deps{
		Registry:       svc,
		Renderer:       render.New(cat, zerolog.Nop()),
		Logger:         zerolog.Nop(),
		Hasher:         hasher.Fake{},
		AdminTokenHash: []byte(adminToken),
	})
	return h.Router(nil, "/metrics")
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func adminHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + adminToken}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %v", resp["status"])
	}
}

func TestListModules(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/modules", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Modules []struct {
			ID              string `json:"id"`
			Name            string `json:"name"`
			SupportsDisplay bool   `json:"supports_display"`
			SupportsForm    bool   `json:"supports_form"`
		} `json:"modules"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Modules) != 17 {
		t.Fatalf("catalog size = %d, want 17", len(resp.Modules))
	}
	for _, m := range resp.Modules {
		if m.ID == "media" && m.SupportsForm {
			t.Error("media module should be display-only")
		}
	}
}

func TestCategoryModulesNeverNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/categories/no-such-category/modules", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 via fallback", rec.Code)
	}

	var resp struct {
		Category string             `json:"category"`
		Modules  []service.Instance `json:"modules"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Modules) != 4 {
		t.Fatalf("fallback modules = %d, want 4 generic", len(resp.Modules))
	}
}

func TestCategoryModulesBadMode(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/categories/booking/modules?mode=sideways", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetDefinition(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/definitions/booking", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/definitions/no-such-category", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for missing definition", rec.Code)
	}
}

func TestUpsertDefinitionRequiresAuth(t *testing.T) {
	router := newTestRouter(t)
	def := service.Definition{Category: "ignored"}

	rec := doJSON(t, router, http.MethodPut, "/api/definitions/booking", def, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPut, "/api/definitions/booking", def,
		map[string]string{"Authorization": "Bearer wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong token: status = %d, want 401", rec.Code)
	}
}

func TestAdminDisabledWithoutHash(t *testing.T) {
	cat := catalog.NewBuiltIn()
	reg := registry.New(cat, nil, zerolog.Nop())
	svc := app.NewRegistryService(reg, memory.NewKVStore(), clock.Real{}, zerolog.Nop())

	h := web.NewHandler(web.Deps{
		Registry: svc,
		Renderer: render.New(cat, zerolog.Nop()),
		Logger:   zerolog.Nop(),
		Hasher:   hasher.Fake{},
	})
	router := h.Router(nil, "/metrics")

	rec := doJSON(t, router, http.MethodPut, "/api/definitions/booking",
		service.Definition{}, adminHeaders())
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 when no admin hash configured", rec.Code)
	}
}

func TestUpsertDefinitionURLOwnsCategory(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]any{
		"category": "hijacked",
		"detail": []map[string]any{
			{"module_id": "venue", "config": map[string]any{"enabled": true, "order": 10, "visibility": "all"}},
		},
	}
	rec := doJSON(t, router, http.MethodPut, "/api/definitions/transport", body, adminHeaders())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/definitions/transport", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatal("upserted definition not readable under the URL category")
	}
	rec = doJSON(t, router, http.MethodGet, "/api/definitions/hijacked", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatal("body category must not create a definition")
	}
}

func TestRemoveDefinition(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/definitions/booking", nil, adminHeaders())
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/definitions/booking", nil, adminHeaders())
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: status = %d, want 404", rec.Code)
	}
}

func TestRenderEndpoint(t *testing.T) {
	router := newTestRouter(t)

	capacity := 300
	eventTime := "20:00"
	budget := 50000.0
	body := map[string]any{
		"category":         "catering",
		"role":             "organizer",
		"venue":            map[string]any{"capacity": capacity},
		"event_details":    map[string]any{"concert_time": eventTime},
		"organizer_budget": budget,
	}

	rec := doJSON(t, router, http.MethodPost, "/api/render", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Category string        `json:"category"`
		Mode     string        `json:"mode"`
		Role     string        `json:"role"`
		Modules  []render.Node `json:"modules"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Mode != "view" || resp.Role != "organizer" {
		t.Errorf("defaults: mode=%s role=%s", resp.Mode, resp.Role)
	}
	if len(resp.Modules) == 0 {
		t.Fatal("render produced no modules")
	}

	// Find the datetime module and check the transformed event time.
	found := false
	for _, n := range resp.Modules {
		if n.ModuleID != "datetime" {
			continue
		}
		found = true
		for _, c := range n.Children {
			if c.Field == "event_time" && c.Value != "20:00" {
				t.Errorf("event_time = %v, want 20:00", c.Value)
			}
		}
	}
	if !found {
		t.Error("datetime module missing from catering render")
	}
}

func TestRenderEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"missing category", map[string]any{}, http.StatusBadRequest},
		{"bad mode", map[string]any{"category": "booking", "mode": "diagonal"}, http.StatusBadRequest},
		{"bad role", map[string]any{"category": "booking", "role": "spectator"}, http.StatusBadRequest},
		{"unknown category ok", map[string]any{"category": "zeppelin-rides"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/render", tt.body, nil)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body=%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRenderEndpointFormMode(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]any{
		"category": "booking",
		"mode":     "form",
		"role":     "provider",
	}
	rec := doJSON(t, router, http.MethodPost, "/api/render", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Modules []render.Node `json:"modules"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	for _, n := range resp.Modules {
		if n.ModuleID == "media" || n.ModuleID == "rating" {
			t.Errorf("display-only module %s appeared in form mode", n.ModuleID)
		}
	}
}
