// Package catalog holds the built-in module catalog and the category
// fallback table. The catalog is constructed once at startup and read-only
// afterwards; every lookup hands out copies.
package catalog

import "github.com/artpar/offerview/domain/module"

// BuiltIn returns the full module catalog in stable order.
func BuiltIn() []module.Definition {
	return []module.Definition{
		{ID: module.Venue, Name: "Venue", Icon: "map-pin", SupportsDisplay: true, SupportsForm: true},
		{ID: module.DateTime, Name: "Date & Time", Icon: "calendar", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Budget, Name: "Budget", Icon: "wallet", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Participant, Name: "Participants", Icon: "users", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Contact, Name: "Contact", Icon: "phone", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Team, Name: "Team", Icon: "id-badge", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Equipment, Name: "Equipment", Icon: "speaker", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Media, Name: "Media", Icon: "image", SupportsDisplay: true, SupportsForm: false},
		{ID: module.Document, Name: "Documents", Icon: "file-text", SupportsDisplay: true, SupportsForm: false},
		{ID: module.Timeline, Name: "Timeline", Icon: "clock", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Checklist, Name: "Checklist", Icon: "check-square", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Logistics, Name: "Logistics", Icon: "truck", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Menu, Name: "Menu", Icon: "utensils", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Vehicle, Name: "Vehicles", Icon: "car", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Medical, Name: "Medical", Icon: "heart-pulse", SupportsDisplay: true, SupportsForm: true},
		{ID: module.Ticketing, Name: "Ticketing", Icon: "ticket", SupportsDisplay: true, SupportsForm: false},
		{ID: module.Rating, Name: "Rating", Icon: "star", SupportsDisplay: true, SupportsForm: false},
	}
}

// Catalog provides module definition lookup. Pure, no I/O; the only
// failure mode is not-found.
type Catalog struct {
	byID  map[module.ID]module.Definition
	order []module.ID
}

// New builds a catalog from a definition list. Later duplicates of the
// same ID are ignored; first registration wins.
func New(defs []module.Definition) *Catalog {
	c := &Catalog{byID: make(map[module.ID]module.Definition, len(defs))}
	for _, d := range defs {
		if _, exists := c.byID[d.ID]; exists {
			continue
		}
		c.byID[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	return c
}

// NewBuiltIn builds the catalog from the built-in definitions.
func NewBuiltIn() *Catalog {
	return New(BuiltIn())
}

// Get returns the definition for an ID.
func (c *Catalog) Get(id module.ID) (module.Definition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// List returns all definitions in registration order.
func (c *Catalog) List() []module.Definition {
	out := make([]module.Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.byID)
}
