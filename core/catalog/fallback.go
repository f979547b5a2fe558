package catalog

import "github.com/artpar/offerview/domain/module"

// categoryModules maps known service categories to their default module
// sets. Order here is render order when no explicit definition exists.
var categoryModules = map[string][]module.ID{
	"venue": {
		module.Venue, module.DateTime, module.Budget, module.Media,
		module.Equipment, module.Contact, module.Rating,
	},
	"booking": {
		module.Venue, module.DateTime, module.Budget, module.Participant,
		module.Team, module.Media, module.Contact, module.Rating,
	},
	"catering": {
		module.Menu, module.DateTime, module.Budget, module.Participant,
		module.Logistics, module.Contact, module.Rating,
	},
	"security": {
		module.Team, module.DateTime, module.Budget, module.Participant,
		module.Checklist, module.Contact,
	},
	"technical": {
		module.Equipment, module.Venue, module.DateTime, module.Budget,
		module.Team, module.Logistics, module.Document, module.Contact,
	},
	"transport": {
		module.Vehicle, module.DateTime, module.Budget, module.Logistics,
		module.Contact,
	},
	"health": {
		module.Medical, module.DateTime, module.Budget, module.Participant,
		module.Contact,
	},
	"ticketing": {
		module.Ticketing, module.DateTime, module.Budget, module.Contact,
	},
}

// genericModules is the fallback for categories absent from the table.
var genericModules = []module.ID{
	module.Venue, module.DateTime, module.Budget, module.Contact,
}

// ModulesForCategory returns the default module IDs for a category.
// Total over its input: an unknown category yields the generic list, so
// every category resolves to a renderable module set. The result is
// always a fresh copy.
func ModulesForCategory(category string) []module.ID {
	ids, ok := categoryModules[category]
	if !ok {
		ids = genericModules
	}
	out := make([]module.ID, len(ids))
	copy(out, ids)
	return out
}
