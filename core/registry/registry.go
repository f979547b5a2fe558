// Package registry merges the module catalog with per-category service
// definitions and answers "which modules does this category's screen
// show". Lookups never fail: unknown categories fall back to the generic
// module table and unresolvable module references are dropped silently.
package registry

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/artpar/offerview/core/catalog"
	"github.com/artpar/offerview/domain/service"
)

// ListMode selects which of a definition's module lists a lookup reads.
type ListMode string

const (
	ListDetail ListMode = "detail"
	ListForm   ListMode = "form"
)

// ParseListMode converts a raw string into a ListMode.
// An empty string defaults to detail.
func ParseListMode(s string) (ListMode, bool) {
	switch ListMode(s) {
	case ListDetail, "":
		return ListDetail, true
	case ListForm:
		return ListForm, true
	default:
		return "", false
	}
}

// Registry holds the current service definitions over a fixed module
// catalog. Reads hand out defensive copies; the stored state is only
// reachable through Upsert and Remove.
type Registry struct {
	mu sync.RWMutex

	catalog  *catalog.Catalog
	defs     map[string]service.Definition // by Definition.Key()
	revision uint64
	logger   zerolog.Logger
}

// New creates a registry seeded with the given definitions.
func New(cat *catalog.Catalog, defaults []service.Definition, logger zerolog.Logger) *Registry {
	r := &Registry{
		catalog: cat,
		defs:    make(map[string]service.Definition, len(defaults)),
		logger:  logger,
	}
	for _, d := range defaults {
		r.defs[d.Key()] = d.Clone()
	}
	return r
}

// Catalog returns the module catalog the registry resolves against.
func (r *Registry) Catalog() *catalog.Catalog {
	return r.catalog
}

// GetServiceDefinition returns the definition for a category. When a
// sub-category is given, its entry is preferred and the category-level
// entry is the fallback.
func (r *Registry) GetServiceDefinition(category, subCategory string) (service.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.lookupLocked(category, subCategory)
	if !ok {
		return service.Definition{}, false
	}
	return d.Clone(), true
}

// ModulesFor returns the ordered module instances for a category and list
// mode. An explicit non-empty list wins; otherwise a list is synthesized
// from the category fallback table with default configs. Instances whose
// module ID cannot be resolved against the catalog are dropped; the
// result is always a defensive copy, sorted by order ascending with ties
// keeping list position.
func (r *Registry) ModulesFor(category, subCategory string, mode ListMode) []service.Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if def, ok := r.lookupLocked(category, subCategory); ok {
		var list []service.Instance
		switch mode {
		case ListForm:
			list = def.Form
		default:
			list = def.Detail
		}
		if len(list) > 0 {
			out := r.resolve(service.CloneInstances(list))
			service.SortInstances(out)
			return out
		}
	}

	ids := catalog.ModulesForCategory(category)
	out := make([]service.Instance, 0, len(ids))
	for i, id := range ids {
		out = append(out, service.Instance{
			ModuleID: id,
			Config:   service.DefaultConfig((i + 1) * 10),
		})
	}
	return r.resolve(out)
}

// Definitions returns a snapshot of all stored definitions, sorted by key.
func (r *Registry) Definitions() []service.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.defs))
	for k := range r.defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]service.Definition, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.defs[k].Clone())
	}
	return out
}

// Upsert stores a definition, replacing any existing entry with the same
// key. Replacement is wholesale: a definition upserted without a form
// list leaves that category with no explicit form list, regardless of
// what the previous entry carried.
func (r *Registry) Upsert(def service.Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs[def.Key()] = def.Clone()
	r.revision++

	r.logger.Debug().
		Str("category", def.Key()).
		Int("detail_modules", len(def.Detail)).
		Int("form_modules", len(def.Form)).
		Msg("service definition upserted")
}

// Remove deletes the definition stored under the given key (category or
// "category/sub"). Removing a missing key is a no-op.
func (r *Registry) Remove(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.defs[key]; !ok {
		return false
	}
	delete(r.defs, key)
	r.revision++

	r.logger.Debug().Str("category", key).Msg("service definition removed")
	return true
}

// Revision returns a counter that increments on every mutation.
func (r *Registry) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

// lookupLocked resolves a definition without copying. Callers hold r.mu.
func (r *Registry) lookupLocked(category, subCategory string) (service.Definition, bool) {
	if subCategory != "" {
		if d, ok := r.defs[category+"/"+subCategory]; ok {
			return d, true
		}
	}
	d, ok := r.defs[category]
	return d, ok
}

// resolve drops instances whose module ID is absent from the catalog.
// A stored definition may reference a module that a later deploy removed;
// that is a degraded render, not an error.
func (r *Registry) resolve(in []service.Instance) []service.Instance {
	out := in[:0]
	for _, inst := range in {
		if _, ok := r.catalog.Get(inst.ModuleID); !ok {
			r.logger.Debug().
				Str("module", string(inst.ModuleID)).
				Msg("dropping instance with unresolvable module id")
			continue
		}
		out = append(out, inst)
	}
	return out
}
