package catalog

import (
	"github.com/artpar/offerview/domain/module"
	"github.com/artpar/offerview/domain/service"
)

// DefaultDefinitions returns the built-in service definitions seeded into
// the registry at startup. Categories absent here fall back to the
// category module table at lookup time. Persisted admin overrides replace
// these entries wholesale on load.
func DefaultDefinitions() []service.Definition {
	return []service.Definition{
		{
			Category: "booking",
			Detail: []service.Instance{
				inst(module.Venue, 10, func(c *service.Config) { c.Required = true }),
				inst(module.DateTime, 20, func(c *service.Config) { c.Required = true }),
				inst(module.Budget, 30, nil),
				inst(module.Participant, 40, nil),
				inst(module.Team, 50, func(c *service.Config) { c.Collapsed = true }),
				inst(module.Media, 60, nil),
				inst(module.Rating, 70, nil),
				inst(module.Contact, 80, func(c *service.Config) {
					c.Visibility = module.VisibilityOrganizerOnly
				}),
			},
			Form: []service.Instance{
				inst(module.DateTime, 10, func(c *service.Config) { c.Required = true }),
				inst(module.Budget, 20, func(c *service.Config) {
					c.Fields = map[string]service.FieldConfig{
						"organizer_budget": {Required: true},
					}
				}),
				inst(module.Participant, 30, nil),
				inst(module.Contact, 40, nil),
			},
		},
		{
			Category: "catering",
			Detail: []service.Instance{
				inst(module.Menu, 10, func(c *service.Config) { c.Required = true }),
				inst(module.DateTime, 20, nil),
				inst(module.Budget, 30, nil),
				inst(module.Participant, 40, nil),
				inst(module.Logistics, 50, func(c *service.Config) { c.Collapsed = true }),
				inst(module.Rating, 60, nil),
				inst(module.Contact, 70, nil),
			},
			Form: []service.Instance{
				inst(module.Menu, 10, func(c *service.Config) { c.Required = true }),
				inst(module.DateTime, 20, nil),
				inst(module.Budget, 30, nil),
				inst(module.Participant, 40, nil),
			},
		},
		{
			Category: "security",
			Detail: []service.Instance{
				inst(module.Team, 10, func(c *service.Config) { c.Required = true }),
				inst(module.DateTime, 20, nil),
				inst(module.Budget, 30, func(c *service.Config) {
					c.Visibility = module.VisibilityProviderOnly
				}),
				inst(module.Participant, 40, nil),
				inst(module.Checklist, 50, func(c *service.Config) { c.Collapsed = true }),
				inst(module.Contact, 60, nil),
			},
			Form: []service.Instance{
				inst(module.Team, 10, func(c *service.Config) { c.Required = true }),
				inst(module.DateTime, 20, nil),
				inst(module.Participant, 30, nil),
			},
		},
	}
}

// inst builds a default instance with optional config tweaks.
func inst(id module.ID, order int, tweak func(*service.Config)) service.Instance {
	cfg := service.DefaultConfig(order)
	if tweak != nil {
		tweak(&cfg)
	}
	return service.Instance{ModuleID: id, Config: cfg}
}
