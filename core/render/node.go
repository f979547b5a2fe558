// Package render turns an ordered module instance list plus a module data
// map into a view tree. It owns the visibility, capability, and collapse
// rules; individual module bodies own their field layout and empty states.
package render

import "github.com/artpar/offerview/domain/module"

// NodeType classifies a view tree node.
type NodeType string

const (
	// NodeModule is a module container. Children are the module body.
	NodeModule NodeType = "module"
	// NodeField is a read-only labelled value.
	NodeField NodeType = "field"
	// NodeFormField is an editable field in form mode.
	NodeFormField NodeType = "form_field"
	// NodeList is a labelled collection of item nodes.
	NodeList NodeType = "list"
	// NodeItem is one entry inside a list node.
	NodeItem NodeType = "item"
	// NodeEmpty is a module's explicit empty state.
	NodeEmpty NodeType = "empty"
)

// Style carries container style pass-through from the module config.
type Style struct {
	NoPadding       bool   `json:"no_padding,omitempty"`
	NoBorder        bool   `json:"no_border,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
}

// Node is one node of the rendered view tree. The tree is plain data so
// screens and the JSON API can consume it directly.
type Node struct {
	Type     NodeType  `json:"type"`
	ModuleID module.ID `json:"module_id,omitempty"`

	Label string `json:"label,omitempty"`
	Icon  string `json:"icon,omitempty"`

	// Collapse state applies to module nodes only. A required module is
	// never collapsible, whatever its stored collapsed flag says.
	Collapsible bool `json:"collapsible,omitempty"`
	Collapsed   bool `json:"collapsed,omitempty"`

	// Field/Value apply to field and form_field nodes.
	Field string `json:"field,omitempty"`
	Value any    `json:"value,omitempty"`

	// Required marks a form field whose config demands a value. The
	// engine only carries the flag; enforcement happens in the consuming
	// form validation.
	Required bool `json:"required,omitempty"`

	Text     string `json:"text,omitempty"`
	Children []Node `json:"children,omitempty"`
	Style    *Style `json:"style,omitempty"`
}

// body accumulates module body nodes, skipping unset optional fields so
// absence never renders as a zero value.
type body struct {
	nodes []Node
}

func (b *body) text(field, label string, v *string) {
	if v == nil {
		return
	}
	b.nodes = append(b.nodes, Node{Type: NodeField, Field: field, Label: label, Value: *v})
}

func (b *body) intval(field, label string, v *int) {
	if v == nil {
		return
	}
	b.nodes = append(b.nodes, Node{Type: NodeField, Field: field, Label: label, Value: *v})
}

func (b *body) floatval(field, label string, v *float64) {
	if v == nil {
		return
	}
	b.nodes = append(b.nodes, Node{Type: NodeField, Field: field, Label: label, Value: *v})
}

func (b *body) boolval(field, label string, v *bool) {
	if v == nil {
		return
	}
	b.nodes = append(b.nodes, Node{Type: NodeField, Field: field, Label: label, Value: *v})
}

func (b *body) list(field, label string, items []string) {
	if len(items) == 0 {
		return
	}
	n := Node{Type: NodeList, Field: field, Label: label}
	for _, item := range items {
		n.Children = append(n.Children, Node{Type: NodeItem, Text: item})
	}
	b.nodes = append(b.nodes, n)
}

// done returns the accumulated nodes, or the module's empty state when
// nothing was set.
func (b *body) done(emptyText string) []Node {
	if len(b.nodes) == 0 {
		return []Node{{Type: NodeEmpty, Text: emptyText}}
	}
	return b.nodes
}

// form accumulates form_field nodes. Unlike display bodies, a form emits
// every editable field so the screen can collect missing values; unset
// fields carry a nil value.
type form struct {
	nodes []Node
}

func (f *form) field(field, label string, v any) {
	f.nodes = append(f.nodes, Node{Type: NodeFormField, Field: field, Label: label, Value: v})
}

func (f *form) done() []Node {
	return f.nodes
}

// deref returns the pointed-to value or nil, for prefilled form fields.
func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
