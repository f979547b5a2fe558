package service_test

import (
	"testing"

	"github.com/artpar/offerview/domain/module"
	"github.com/artpar/offerview/domain/service"
)

func TestDefinitionKey(t *testing.T) {
	tests := []struct {
		category string
		sub      string
		want     string
	}{
		{"booking", "", "booking"},
		{"catering", "vegan", "catering/vegan"},
	}
	for _, tt := range tests {
		def := service.Definition{Category: tt.category, SubCategory: tt.sub}
		if got := def.Key(); got != tt.want {
			t.Errorf("Key() = %q, want %q", got, tt.want)
		}
	}
}

func TestSortInstancesStable(t *testing.T) {
	list := []service.Instance{
		{ModuleID: module.Contact, Config: service.Config{Order: 30}},
		{ModuleID: module.Venue, Config: service.Config{Order: 10}},
		{ModuleID: module.DateTime, Config: service.Config{Order: 10}},
		{ModuleID: module.Budget, Config: service.Config{Order: 20}},
	}
	service.SortInstances(list)

	want := []module.ID{module.Venue, module.DateTime, module.Budget, module.Contact}
	for i, id := range want {
		if list[i].ModuleID != id {
			t.Fatalf("position %d = %s, want %s (ties must keep list order)", i, list[i].ModuleID, id)
		}
	}
}

func TestConfigCloneIsDeep(t *testing.T) {
	cfg := service.Config{
		Enabled: true,
		Order:   10,
		Fields: map[string]service.FieldConfig{
			"name": {Required: true},
		},
	}
	clone := cfg.Clone()

	clone.Fields["name"] = service.FieldConfig{Required: false}
	clone.Fields["extra"] = service.FieldConfig{}

	if !cfg.Fields["name"].Required {
		t.Error("clone shares the fields map with the original")
	}
	if _, ok := cfg.Fields["extra"]; ok {
		t.Error("adding to the clone leaked into the original")
	}
}

func TestDefinitionCloneIsDeep(t *testing.T) {
	def := service.Definition{
		Category: "booking",
		Detail: []service.Instance{
			{ModuleID: module.Venue, Config: service.Config{Enabled: true, Order: 10}},
		},
	}
	clone := def.Clone()

	clone.Detail[0].Config.Enabled = false
	clone.Detail = append(clone.Detail, service.Instance{ModuleID: module.Budget})

	if !def.Detail[0].Config.Enabled {
		t.Error("clone shares instance configs with the original")
	}
	if len(def.Detail) != 1 {
		t.Error("appending to the clone grew the original")
	}
}

func TestCloneInstancesIndependent(t *testing.T) {
	in := []service.Instance{
		{ModuleID: module.Venue, Config: service.Config{
			Order:  10,
			Fields: map[string]service.FieldConfig{"name": {Required: true}},
		}},
	}
	out := service.CloneInstances(in)

	out[0].Config.Order = 99
	out[0].Config.Fields["name"] = service.FieldConfig{}

	if in[0].Config.Order != 10 {
		t.Error("clone shares config values")
	}
	if !in[0].Config.Fields["name"].Required {
		t.Error("clone shares field maps")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := service.DefaultConfig(30)
	if !cfg.Enabled {
		t.Error("default config must be enabled")
	}
	if cfg.Order != 30 {
		t.Errorf("order = %d, want 30", cfg.Order)
	}
	if cfg.Visibility != module.VisibilityAll {
		t.Errorf("visibility = %s, want all", cfg.Visibility)
	}
	if cfg.Required || cfg.Collapsed {
		t.Error("default config must not be required or collapsed")
	}
}
