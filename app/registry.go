// Package app contains the application services: the registry context
// that loads and persists service definition overrides, and the data
// adapter that converts external entities into module data maps.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/artpar/offerview/adapters/metrics"
	"github.com/artpar/offerview/core/registry"
	"github.com/artpar/offerview/domain/module"
	"github.com/artpar/offerview/domain/service"
	"github.com/artpar/offerview/ports"
)

// definitionKeyPrefix namespaces override envelopes in the KV store.
const definitionKeyPrefix = "svcdef:"

// persistTimeout bounds a single background persist attempt.
const persistTimeout = 10 * time.Second

// overrideEnvelope is the persisted form of a service definition
// override. The store treats it as opaque bytes.
type overrideEnvelope struct {
	Revision   string             `json:"revision"`
	UpdatedAt  string             `json:"updated_at"`
	Definition service.Definition `json:"definition"`
}

// RegistryService is the process-wide registry context. In-memory state
// is the source of truth while the process runs; the KV store only seeds
// the next launch. Mutations apply synchronously and schedule a
// fire-and-forget persist, so the last caller to schedule a persist for a
// key wins — including across processes, where the last process to
// successfully persist wins at next load. That is an accepted contract,
// not a race to fix.
type RegistryService struct {
	registry *registry.Registry
	store    ports.KVStore
	clock    ports.Clock
	logger   zerolog.Logger
	metrics  *metrics.Collector

	ready   atomic.Bool
	persist sync.WaitGroup
}

// RegistryOption customizes a RegistryService.
type RegistryOption func(*RegistryService)

// WithMetrics attaches a metrics collector.
func WithMetrics(c *metrics.Collector) RegistryOption {
	return func(s *RegistryService) { s.metrics = c }
}

// NewRegistryService creates the registry context over a seeded registry.
func NewRegistryService(reg *registry.Registry, store ports.KVStore, clock ports.Clock, logger zerolog.Logger, opts ...RegistryOption) *RegistryService {
	s := &RegistryService{
		registry: reg,
		store:    store,
		clock:    clock,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads persisted overrides and replaces the matching built-in
// entries. Failures are logged, never fatal: consumers simply keep the
// built-in defaults. Ready state is best-effort, not a gate — reads work
// before, during, and after Load.
func (s *RegistryService) Load(ctx context.Context) error {
	start := time.Now()

	pairs, err := s.store.List(ctx, definitionKeyPrefix)
	if err != nil {
		s.ready.Store(true)
		s.logger.Warn().Err(err).Msg("loading overrides failed, using built-in defaults")
		return fmt.Errorf("list overrides: %w", err)
	}

	loaded := 0
	for key, raw := range pairs {
		var env overrideEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("skipping malformed override")
			continue
		}
		s.registry.Upsert(env.Definition)
		loaded++
	}

	s.ready.Store(true)

	if s.metrics != nil {
		s.metrics.LoadDuration.Observe(time.Since(start).Seconds())
		s.metrics.OverridesLoaded.Set(float64(loaded))
		s.metrics.DefinitionCount.Set(float64(len(s.registry.Definitions())))
	}

	s.logger.Info().
		Int("overrides", loaded).
		Dur("took", time.Since(start)).
		Msg("registry loaded")
	return nil
}

// Ready reports whether the persisted overrides have been applied.
func (s *RegistryService) Ready() bool {
	return s.ready.Load()
}

// Registry exposes the underlying registry for read paths.
func (s *RegistryService) Registry() *registry.Registry {
	return s.registry
}

// ModulesFor returns the ordered module instances for a category.
func (s *RegistryService) ModulesFor(category, subCategory string, mode registry.ListMode) []service.Instance {
	return s.registry.ModulesFor(category, subCategory, mode)
}

// Definition returns the stored definition for a category.
func (s *RegistryService) Definition(category, subCategory string) (service.Definition, bool) {
	return s.registry.GetServiceDefinition(category, subCategory)
}

// Definitions returns a snapshot of all stored definitions.
func (s *RegistryService) Definitions() []service.Definition {
	return s.registry.Definitions()
}

// Upsert replaces a category's definition and schedules its persist.
// The in-memory update is synchronous; callers observing the registry
// immediately after see the new state regardless of persistence.
func (s *RegistryService) Upsert(def service.Definition) {
	s.registry.Upsert(def)
	s.countMutation("upsert")
	s.schedulePersist(def.Clone())
}

// Remove deletes a category's definition and schedules the storage
// delete. Removing an unknown key is a no-op.
func (s *RegistryService) Remove(key string) bool {
	if !s.registry.Remove(key) {
		return false
	}
	s.countMutation("remove")
	s.scheduleDelete(key)
	return true
}

// SetModuleConfig updates one module's config inside a category's list.
// When the category has no explicit definition yet, the effective
// (resolved) lists are materialized first, so the tweak becomes a full
// replace-style override. A module absent from the list is appended.
func (s *RegistryService) SetModuleConfig(category, subCategory string, mode registry.ListMode, moduleID module.ID, cfg service.Config) {
	def, ok := s.registry.GetServiceDefinition(category, subCategory)
	if !ok {
		def = service.Definition{
			Category:    category,
			SubCategory: subCategory,
			Detail:      s.registry.ModulesFor(category, subCategory, registry.ListDetail),
			Form:        s.registry.ModulesFor(category, subCategory, registry.ListForm),
		}
	}

	list := def.Detail
	if mode == registry.ListForm {
		list = def.Form
	}

	found := false
	for i := range list {
		if list[i].ModuleID == moduleID {
			list[i].Config = cfg.Clone()
			found = true
			break
		}
	}
	if !found {
		list = append(list, service.Instance{
			ModuleID: moduleID,
			Config:   cfg.Clone(),
		})
	}

	if mode == registry.ListForm {
		def.Form = list
	} else {
		def.Detail = list
	}

	s.Upsert(def)
}

// Flush waits for all scheduled persists to finish. Used at shutdown so
// the last mutations reach storage; normal callers never wait.
func (s *RegistryService) Flush() {
	s.persist.Wait()
}

// schedulePersist writes an override envelope in the background.
func (s *RegistryService) schedulePersist(def service.Definition) {
	env := overrideEnvelope{
		Revision:   uuid.New().String(),
		UpdatedAt:  s.clock.Now().UTC().Format(time.RFC3339),
		Definition: def,
	}

	s.persist.Add(1)
	go func() {
		defer s.persist.Done()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		raw, err := json.Marshal(env)
		if err != nil {
			s.persistFailed(def.Key(), err)
			return
		}
		if err := s.store.Set(ctx, definitionKeyPrefix+def.Key(), raw); err != nil {
			s.persistFailed(def.Key(), err)
			return
		}
		if s.metrics != nil {
			s.metrics.PersistTotal.Inc()
		}
		s.logger.Debug().
			Str("category", def.Key()).
			Str("revision", env.Revision).
			Msg("override persisted")
	}()
}

// scheduleDelete removes an override key in the background.
func (s *RegistryService) scheduleDelete(key string) {
	s.persist.Add(1)
	go func() {
		defer s.persist.Done()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := s.store.Delete(ctx, definitionKeyPrefix+key); err != nil {
			s.persistFailed(key, err)
			return
		}
		if s.metrics != nil {
			s.metrics.PersistTotal.Inc()
		}
		s.logger.Debug().Str("category", key).Msg("override deleted from storage")
	}()
}

// persistFailed logs a background persistence failure. The in-memory
// state stays authoritative; the error only affects the next launch.
func (s *RegistryService) persistFailed(key string, err error) {
	if s.metrics != nil {
		s.metrics.PersistErrors.Inc()
	}
	s.logger.Error().Err(err).Str("category", key).Msg("override persist failed")
}

func (s *RegistryService) countMutation(kind string) {
	if s.metrics != nil {
		s.metrics.RegistryMutations.WithLabelValues(kind).Inc()
		s.metrics.DefinitionCount.Set(float64(len(s.registry.Definitions())))
	}
}
