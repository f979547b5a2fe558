package metrics_test

import (
	"testing"

	"github.com/artpar/offerview/adapters/metrics"
)

func TestNewInitializesAllMetrics(t *testing.T) {
	m, reg := metrics.New()
	if m == nil {
		t.Fatal("New returned nil collector")
	}
	if reg == nil {
		t.Fatal("New returned nil registry")
	}

	if m.RenderPasses == nil {
		t.Error("RenderPasses is nil")
	}
	if m.ModulesRendered == nil {
		t.Error("ModulesRendered is nil")
	}
	if m.ModulesSkipped == nil {
		t.Error("ModulesSkipped is nil")
	}
	if m.RenderDuration == nil {
		t.Error("RenderDuration is nil")
	}
	if m.DefinitionCount == nil {
		t.Error("DefinitionCount is nil")
	}
	if m.RegistryMutations == nil {
		t.Error("RegistryMutations is nil")
	}
	if m.PersistTotal == nil {
		t.Error("PersistTotal is nil")
	}
	if m.PersistErrors == nil {
		t.Error("PersistErrors is nil")
	}
	if m.LoadDuration == nil {
		t.Error("LoadDuration is nil")
	}
	if m.OverridesLoaded == nil {
		t.Error("OverridesLoaded is nil")
	}
}

func TestRenderPasses(t *testing.T) {
	m, reg := metrics.New()

	m.RenderPasses.WithLabelValues("catering", "view").Inc()
	m.RenderPasses.WithLabelValues("booking", "form").Add(3)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	found := false
	for _, f := range families {
		if f.GetName() == "offerview_render_passes_total" {
			found = true
			if len(f.GetMetric()) != 2 {
				t.Errorf("expected 2 metric series, got %d", len(f.GetMetric()))
			}
		}
	}
	if !found {
		t.Error("offerview_render_passes_total metric not found")
	}
}

func TestModulesSkipped(t *testing.T) {
	m, reg := metrics.New()

	m.ModulesSkipped.WithLabelValues("budget", "visibility").Inc()
	m.ModulesSkipped.WithLabelValues("media", "no_capability").Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	found := false
	for _, f := range families {
		if f.GetName() == "offerview_modules_skipped_total" {
			found = true
			if len(f.GetMetric()) != 2 {
				t.Errorf("expected 2 metric series, got %d", len(f.GetMetric()))
			}
		}
	}
	if !found {
		t.Error("offerview_modules_skipped_total metric not found")
	}
}

func TestCollectorsAreIndependent(t *testing.T) {
	// Each collector owns its registry, so parallel construction never
	// hits duplicate-registration panics.
	a, regA := metrics.New()
	_, regB := metrics.New()

	a.PersistTotal.Inc()

	familiesB, err := regB.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	for _, f := range familiesB {
		if f.GetName() == "offerview_persist_total" {
			if f.GetMetric()[0].GetCounter().GetValue() != 0 {
				t.Error("second collector saw increments from the first")
			}
		}
	}

	familiesA, err := regA.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	for _, f := range familiesA {
		if f.GetName() == "offerview_persist_total" {
			if f.GetMetric()[0].GetCounter().GetValue() != 1 {
				t.Error("first collector did not record its increment")
			}
		}
	}
}
