package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/artpar/offerview/adapters/clock"
	"github.com/artpar/offerview/adapters/memory"
	"github.com/artpar/offerview/app"
	"github.com/artpar/offerview/core/catalog"
	"github.com/artpar/offerview/core/registry"
	"github.com/artpar/offerview/domain/module"
	"github.com/artpar/offerview/domain/service"
	"github.com/artpar/offerview/ports"
)

func newService(t *testing.T, store ports.KVStore, defaults []service.Definition) *app.RegistryService {
	t.Helper()
	reg := registry.New(catalog.NewBuiltIn(), defaults, zerolog.Nop())
	fake := clock.NewFake(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	return app.NewRegistryService(reg, store, fake, zerolog.Nop())
}

func TestLoadAppliesPersistedOverrides(t *testing.T) {
	store := memory.NewKVStore()
	ctx := context.Background()

	// Simulate an override persisted by a previous run.
	env := map[string]any{
		"revision":   "11111111-1111-1111-1111-111111111111",
		"updated_at": "2026-08-30T10:00:00Z",
		"definition": service.Definition{
			Category: "booking",
			Detail: []service.Instance{
				{ModuleID: module.Rating, Config: service.Config{Enabled: true, Order: 10, Visibility: module.VisibilityAll}},
			},
		},
	}
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, "svcdef:booking", raw); err != nil {
		t.Fatal(err)
	}

	svc := newService(t, store, catalog.DefaultDefinitions())
	if svc.Ready() {
		t.Fatal("service ready before Load")
	}
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !svc.Ready() {
		t.Fatal("service not ready after Load")
	}

	got := svc.ModulesFor("booking", "", registry.ListDetail)
	if len(got) != 1 || got[0].ModuleID != module.Rating {
		t.Fatalf("override did not replace the default: got %v", got)
	}
}

func TestLoadSkipsMalformedOverrides(t *testing.T) {
	store := memory.NewKVStore()
	ctx := context.Background()

	if err := store.Set(ctx, "svcdef:booking", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	svc := newService(t, store, catalog.DefaultDefinitions())
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("Load should tolerate malformed entries: %v", err)
	}

	// The default definition survives untouched.
	def, ok := svc.Definition("booking", "")
	if !ok || len(def.Detail) == 0 {
		t.Fatal("built-in booking definition lost after malformed override")
	}
}

func TestLoadFailureKeepsDefaultsAndReadiness(t *testing.T) {
	svc := newService(t, failingStore{}, catalog.DefaultDefinitions())

	if err := svc.Load(context.Background()); err == nil {
		t.Fatal("expected error from failing store")
	}
	if !svc.Ready() {
		t.Fatal("service must report ready even when loading fails")
	}
	if _, ok := svc.Definition("booking", ""); !ok {
		t.Fatal("defaults must survive a failed load")
	}
}

func TestUpsertPersistsEnvelope(t *testing.T) {
	store := memory.NewKVStore()
	svc := newService(t, store, nil)

	svc.Upsert(service.Definition{
		Category: "catering",
		Detail: []service.Instance{
			{ModuleID: module.Menu, Config: service.Config{Enabled: true, Order: 10, Visibility: module.VisibilityAll}},
		},
	})
	svc.Flush()

	raw, err := store.Get(context.Background(), "svcdef:catering")
	if err != nil {
		t.Fatal(err)
	}
	if raw == nil {
		t.Fatal("upsert did not reach the store")
	}

	var env struct {
		Revision   string             `json:"revision"`
		UpdatedAt  string             `json:"updated_at"`
		Definition service.Definition `json:"definition"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("stored envelope not valid JSON: %v", err)
	}
	if env.Revision == "" {
		t.Error("envelope missing revision")
	}
	if env.UpdatedAt != "2026-09-01T12:00:00Z" {
		t.Errorf("updated_at = %q, want clock time", env.UpdatedAt)
	}
	if env.Definition.Category != "catering" || len(env.Definition.Detail) != 1 {
		t.Errorf("stored definition = %+v", env.Definition)
	}
}

func TestUpsertLastWriteWins(t *testing.T) {
	store := memory.NewKVStore()
	svc := newService(t, store, nil)

	def := service.Definition{Category: "security"}
	for order := 10; order <= 30; order += 10 {
		def.Detail = []service.Instance{
			{ModuleID: module.Team, Config: service.Config{Enabled: true, Order: order, Visibility: module.VisibilityAll}},
		}
		svc.Upsert(def)
		svc.Flush()
	}

	raw, err := store.Get(context.Background(), "svcdef:security")
	if err != nil || raw == nil {
		t.Fatalf("Get: raw=%v err=%v", raw, err)
	}
	var env struct {
		Definition service.Definition `json:"definition"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatal(err)
	}
	if got := env.Definition.Detail[0].Config.Order; got != 30 {
		t.Fatalf("stored order = %d, want the last write (30)", got)
	}
}

func TestRemoveDeletesOverride(t *testing.T) {
	store := memory.NewKVStore()
	svc := newService(t, store, nil)

	svc.Upsert(service.Definition{Category: "transport"})
	svc.Flush()

	if !svc.Remove("transport") {
		t.Fatal("Remove returned false for an existing key")
	}
	svc.Flush()

	raw, err := store.Get(context.Background(), "svcdef:transport")
	if err != nil {
		t.Fatal(err)
	}
	if raw != nil {
		t.Fatal("override still in store after Remove")
	}
	if svc.Remove("transport") {
		t.Fatal("Remove of a missing key should be a no-op")
	}
}

func TestSetModuleConfigMaterializesFallback(t *testing.T) {
	store := memory.NewKVStore()
	svc := newService(t, store, nil)

	// No explicit definition for "health" yet; tweaking one module must
	// first materialize the resolved lists so the override is complete.
	svc.SetModuleConfig("health", "", registry.ListDetail, module.Medical, service.Config{
		Enabled:     true,
		Order:       5,
		Required:    true,
		Visibility:  module.VisibilityAll,
		CustomLabel: "Medical coverage",
	})
	svc.Flush()

	def, ok := svc.Definition("health", "")
	if !ok {
		t.Fatal("SetModuleConfig did not create a definition")
	}
	if len(def.Detail) < 2 {
		t.Fatalf("materialized detail list too short: %v", def.Detail)
	}

	var tweaked *service.Instance
	for i := range def.Detail {
		if def.Detail[i].ModuleID == module.Medical {
			tweaked = &def.Detail[i]
		}
	}
	if tweaked == nil {
		t.Fatal("medical module missing from materialized list")
	}
	if !tweaked.Config.Required || tweaked.Config.CustomLabel != "Medical coverage" {
		t.Errorf("tweak not applied: %+v", tweaked.Config)
	}

	raw, err := store.Get(context.Background(), "svcdef:health")
	if err != nil || raw == nil {
		t.Fatal("materialized definition was not persisted")
	}
}

func TestSetModuleConfigAppendsMissingModule(t *testing.T) {
	store := memory.NewKVStore()
	svc := newService(t, store, []service.Definition{{
		Category: "booking",
		Detail: []service.Instance{
			{ModuleID: module.Venue, Config: service.Config{Enabled: true, Order: 10, Visibility: module.VisibilityAll}},
		},
	}})

	svc.SetModuleConfig("booking", "", registry.ListDetail, module.Rating, service.Config{
		Enabled: true, Order: 90, Visibility: module.VisibilityAll,
	})

	got := svc.ModulesFor("booking", "", registry.ListDetail)
	if len(got) != 2 || got[1].ModuleID != module.Rating {
		t.Fatalf("modules after append = %v, want venue then rating", got)
	}
}

// failingStore errors on every operation.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errStore }
func (failingStore) Set(context.Context, string, []byte) error   { return errStore }
func (failingStore) Delete(context.Context, string) error        { return errStore }
func (failingStore) List(context.Context, string) (map[string][]byte, error) {
	return nil, errStore
}
func (failingStore) Close() error { return nil }

var errStore = errors.New("store unavailable")
