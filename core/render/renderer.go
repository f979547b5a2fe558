package render

import (
	"github.com/rs/zerolog"

	"github.com/artpar/offerview/core/catalog"
	"github.com/artpar/offerview/domain/module"
	"github.com/artpar/offerview/domain/moduledata"
	"github.com/artpar/offerview/domain/service"
)

// SkipReason explains why a render pass dropped a module instance.
type SkipReason string

const (
	SkipDisabled      SkipReason = "disabled"
	SkipVisibility    SkipReason = "visibility"
	SkipUnknownModule SkipReason = "unknown_module"
	SkipNoCapability  SkipReason = "no_capability"
)

// Renderer builds view trees from module instances and data maps.
// It never fails: configuration problems degrade to fewer modules and
// missing data degrades to per-module empty states.
type Renderer struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger

	// onSkip is invoked once per dropped instance, for observability.
	onSkip func(module.ID, SkipReason)
}

// Option customizes a renderer.
type Option func(*Renderer)

// WithSkipHook registers a callback invoked whenever an instance is
// dropped from the output.
func WithSkipHook(fn func(module.ID, SkipReason)) Option {
	return func(r *Renderer) { r.onSkip = fn }
}

// New creates a renderer over the given catalog.
func New(cat *catalog.Catalog, logger zerolog.Logger, opts ...Option) *Renderer {
	r := &Renderer{catalog: cat, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render walks the (already order-sorted) instance list and produces the
// module containers for the requested mode and role.
//
// Per instance: disabled configs are skipped; visibility excluding the
// role skips; an ID missing from the catalog or dispatch table skips; a
// module lacking the mode's implementation skips. Everything surviving is
// rendered, including modules with no data slice, whose bodies produce
// their own empty state.
func (r *Renderer) Render(instances []service.Instance, data *moduledata.Map, mode module.Mode, role module.Role) []Node {
	out := make([]Node, 0, len(instances))

	for _, inst := range instances {
		cfg := inst.Config

		if !cfg.Enabled {
			r.skip(inst.ModuleID, SkipDisabled)
			continue
		}
		if !cfg.Visibility.AllowsRole(role) {
			r.skip(inst.ModuleID, SkipVisibility)
			continue
		}

		def, ok := r.catalog.Get(inst.ModuleID)
		if !ok {
			r.logger.Debug().
				Str("module", string(inst.ModuleID)).
				Msg("skipping unknown module id")
			r.skip(inst.ModuleID, SkipUnknownModule)
			continue
		}

		impl, ok := renderers[inst.ModuleID]
		if !ok {
			r.skip(inst.ModuleID, SkipUnknownModule)
			continue
		}

		var bodyFn func(*moduledata.Map) []Node
		if mode.UsesForm() {
			if !def.SupportsForm || impl.form == nil {
				r.skip(inst.ModuleID, SkipNoCapability)
				continue
			}
			bodyFn = impl.form
		} else {
			if !def.SupportsDisplay || impl.display == nil {
				r.skip(inst.ModuleID, SkipNoCapability)
				continue
			}
			bodyFn = impl.display
		}

		children := bodyFn(data)
		if mode.UsesForm() {
			applyFieldConfig(children, cfg.Fields)
		}

		out = append(out, containerNode(def, cfg, children))
	}

	return out
}

// containerNode wraps a module body in its shared container: custom label
// and icon override the definition, and a required module never offers a
// collapse control regardless of the stored collapsed flag.
func containerNode(def module.Definition, cfg service.Config, children []Node) Node {
	n := Node{
		Type:     NodeModule,
		ModuleID: def.ID,
		Label:    def.Name,
		Icon:     def.Icon,
		Children: children,
	}
	if cfg.CustomLabel != "" {
		n.Label = cfg.CustomLabel
	}
	if cfg.CustomIcon != "" {
		n.Icon = cfg.CustomIcon
	}
	if !cfg.Required {
		n.Collapsible = true
		n.Collapsed = cfg.Collapsed
	}
	if cfg.NoPadding || cfg.NoBorder || cfg.BackgroundColor != "" {
		n.Style = &Style{
			NoPadding:       cfg.NoPadding,
			NoBorder:        cfg.NoBorder,
			BackgroundColor: cfg.BackgroundColor,
		}
	}
	return n
}

// applyFieldConfig copies per-field requiredness onto form field nodes.
// The flag is carried for the consuming form's validation; this engine
// does not enforce it.
func applyFieldConfig(nodes []Node, fields map[string]service.FieldConfig) {
	if len(fields) == 0 {
		return
	}
	for i := range nodes {
		if nodes[i].Type != NodeFormField {
			continue
		}
		if fc, ok := fields[nodes[i].Field]; ok {
			nodes[i].Required = fc.Required
		}
	}
}

func (r *Renderer) skip(id module.ID, reason SkipReason) {
	if r.onSkip != nil {
		r.onSkip(id, reason)
	}
}
