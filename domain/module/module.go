// Package module provides the module identity types and value types shared
// across the composition engine. The module ID set is closed: every screen
// module the engine can render is enumerated here.
package module

import "fmt"

// ID identifies a module kind.
type ID string

const (
	Venue       ID = "venue"
	DateTime    ID = "datetime"
	Budget      ID = "budget"
	Participant ID = "participant"
	Contact     ID = "contact"
	Team        ID = "team"
	Equipment   ID = "equipment"
	Media       ID = "media"
	Document    ID = "document"
	Timeline    ID = "timeline"
	Checklist   ID = "checklist"
	Logistics   ID = "logistics"
	Menu        ID = "menu"
	Vehicle     ID = "vehicle"
	Medical     ID = "medical"
	Ticketing   ID = "ticketing"
	Rating      ID = "rating"
)

// allIDs lists every known module ID in catalog order.
var allIDs = []ID{
	Venue, DateTime, Budget, Participant, Contact, Team, Equipment,
	Media, Document, Timeline, Checklist, Logistics, Menu, Vehicle,
	Medical, Ticketing, Rating,
}

// AllIDs returns every known module ID in a stable order.
func AllIDs() []ID {
	ids := make([]ID, len(allIDs))
	copy(ids, allIDs)
	return ids
}

// Valid reports whether the ID belongs to the closed module set.
func (id ID) Valid() bool {
	for _, known := range allIDs {
		if id == known {
			return true
		}
	}
	return false
}

// ParseID converts a raw string into an ID.
func ParseID(s string) (ID, error) {
	id := ID(s)
	if !id.Valid() {
		return "", fmt.Errorf("unknown module id %q", s)
	}
	return id, nil
}

// Definition describes one module kind (immutable value type).
// Definitions are built once at catalog load time and never mutated.
type Definition struct {
	ID   ID
	Name string
	Icon string

	// SupportsDisplay and SupportsForm gate which render modes the
	// module participates in. A module lacking a capability is skipped
	// for that mode, not treated as an error.
	SupportsDisplay bool
	SupportsForm    bool
}
