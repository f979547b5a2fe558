// Package service provides the per-category module configuration value
// types: which modules a service category's detail and form screens show,
// in what order, and with what per-instance settings.
package service

import (
	"sort"

	"github.com/artpar/offerview/domain/module"
)

// FieldConfig carries per-field settings inside a module.
// The engine stores and exposes it but does not enforce it; form
// validation outside this core consumes the flag.
type FieldConfig struct {
	Required bool `json:"required" yaml:"required"`
}

// Config holds the per-instance settings for one module on one category.
type Config struct {
	Enabled   bool `json:"enabled" yaml:"enabled"`
	Order     int  `json:"order" yaml:"order"`
	Required  bool `json:"required" yaml:"required"`
	Collapsed bool `json:"collapsed" yaml:"collapsed"`

	Visibility module.Visibility `json:"visibility" yaml:"visibility"`

	// CustomLabel and CustomIcon override the catalog definition when set.
	CustomLabel string `json:"custom_label,omitempty" yaml:"custom_label,omitempty"`
	CustomIcon  string `json:"custom_icon,omitempty" yaml:"custom_icon,omitempty"`

	Fields map[string]FieldConfig `json:"fields,omitempty" yaml:"fields,omitempty"`

	// Style pass-through for the container; the engine never interprets
	// these beyond copying them onto the rendered node.
	NoPadding       bool   `json:"no_padding,omitempty" yaml:"no_padding,omitempty"`
	NoBorder        bool   `json:"no_border,omitempty" yaml:"no_border,omitempty"`
	BackgroundColor string `json:"background_color,omitempty" yaml:"background_color,omitempty"`
}

// DefaultConfig returns the config used when a module list is synthesized
// from the category fallback rather than an explicit definition.
func DefaultConfig(order int) Config {
	return Config{
		Enabled:    true,
		Order:      order,
		Visibility: module.VisibilityAll,
	}
}

// Clone returns an independent copy of the config.
func (c Config) Clone() Config {
	out := c
	if c.Fields != nil {
		out.Fields = make(map[string]FieldConfig, len(c.Fields))
		for k, v := range c.Fields {
			out.Fields[k] = v
		}
	}
	return out
}

// Instance pairs a module ID with its per-category configuration.
type Instance struct {
	ModuleID module.ID `json:"module_id" yaml:"module_id"`
	Config   Config    `json:"config" yaml:"config"`
}

// Clone returns an independent copy of the instance.
func (i Instance) Clone() Instance {
	return Instance{ModuleID: i.ModuleID, Config: i.Config.Clone()}
}

// Definition holds the ordered module lists for one service category.
// Detail backs display contexts, Form backs request/form contexts; the two
// lists are independent and an upsert replaces both (no merging).
type Definition struct {
	Category    string     `json:"category" yaml:"category"`
	SubCategory string     `json:"sub_category,omitempty" yaml:"sub_category,omitempty"`
	Detail      []Instance `json:"detail,omitempty" yaml:"detail,omitempty"`
	Form        []Instance `json:"form,omitempty" yaml:"form,omitempty"`
}

// Key returns the registry key for the definition. Sub-category entries
// are keyed separately from their base category.
func (d Definition) Key() string {
	if d.SubCategory != "" {
		return d.Category + "/" + d.SubCategory
	}
	return d.Category
}

// Clone returns a deep copy. Two categories never share a mutable
// instance, so every read path hands out clones.
func (d Definition) Clone() Definition {
	out := Definition{Category: d.Category, SubCategory: d.SubCategory}
	if d.Detail != nil {
		out.Detail = CloneInstances(d.Detail)
	}
	if d.Form != nil {
		out.Form = CloneInstances(d.Form)
	}
	return out
}

// CloneInstances deep-copies a module instance list.
func CloneInstances(in []Instance) []Instance {
	out := make([]Instance, len(in))
	for i, inst := range in {
		out[i] = inst.Clone()
	}
	return out
}

// SortInstances stable-sorts instances by config order ascending.
// Ties keep the original list position, and repeated calls with unchanged
// input produce the same sequence.
func SortInstances(in []Instance) {
	sort.SliceStable(in, func(i, j int) bool {
		return in[i].Config.Order < in[j].Config.Order
	})
}
