package module

import "fmt"

// Role is the perspective a screen is rendered for. It drives the
// presentational visibility filter only; it is not a security boundary.
type Role string

const (
	RoleProvider  Role = "provider"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleProvider, RoleOrganizer, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Visibility restricts a module instance to particular viewing roles.
type Visibility string

const (
	VisibilityAll           Visibility = "all"
	VisibilityProviderOnly  Visibility = "provider_only"
	VisibilityOrganizerOnly Visibility = "organizer_only"
	VisibilityAdminOnly     Visibility = "admin_only"
)

// AllowsRole reports whether the visibility admits the given role.
// Unknown visibility values behave like "all" so a bad override widens
// rather than hides.
func (v Visibility) AllowsRole(r Role) bool {
	switch v {
	case VisibilityProviderOnly:
		return r == RoleProvider
	case VisibilityOrganizerOnly:
		return r == RoleOrganizer
	case VisibilityAdminOnly:
		return r == RoleAdmin
	default:
		return true
	}
}

// Mode selects which implementation of a module a render pass uses.
type Mode string

const (
	ModeView Mode = "view" // read-only display
	ModeEdit Mode = "edit" // display with change reporting enabled
	ModeForm Mode = "form" // request/form context
)

// ParseMode converts a raw string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeView, ModeEdit, ModeForm:
		return m, nil
	default:
		return "", fmt.Errorf("unknown render mode %q", s)
	}
}

// UsesForm reports whether the mode dispatches to a module's form
// implementation rather than its display implementation.
func (m Mode) UsesForm() bool {
	return m == ModeForm
}
