// Package moduledata defines the per-module data shapes a screen renders
// from, and the composite Map that carries one optional slice per module.
//
// Every field is optional: upstream entities rarely populate the whole
// shape, and a missing value stays nil rather than degrading to a zero or
// empty-string sentinel. Renderers, not transforms, decide how absence is
// presented.
package moduledata

import "github.com/artpar/offerview/domain/module"

// VenueData feeds the venue module.
type VenueData struct {
	Name          *string  `json:"name,omitempty"`
	Address       *string  `json:"address,omitempty"`
	City          *string  `json:"city,omitempty"`
	District      *string  `json:"district,omitempty"`
	Capacity      *int     `json:"capacity,omitempty"`
	IndoorOutdoor *string  `json:"indoor_outdoor,omitempty"`
	StageWidth    *float64 `json:"stage_width,omitempty"`
	StageDepth    *float64 `json:"stage_depth,omitempty"`
	Backstage     *bool    `json:"backstage,omitempty"`
	PowerKW       *float64 `json:"power_kw,omitempty"`
	Accessible    *bool    `json:"accessible,omitempty"`
	ParkingSpots  *int     `json:"parking_spots,omitempty"`
}

// DateTimeData feeds the datetime module. Timestamp strings pass through
// from the upstream entities verbatim; this package never reformats them.
type DateTimeData struct {
	EventDate     *string  `json:"event_date,omitempty"`
	EventTime     *string  `json:"event_time,omitempty"`
	StartTime     *string  `json:"start_time,omitempty"`
	EndTime       *string  `json:"end_time,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	FlexibleDates *bool    `json:"flexible_dates,omitempty"`
	SetupTime     *string  `json:"setup_time,omitempty"`
	TeardownTime  *string  `json:"teardown_time,omitempty"`
}

// BudgetData feeds the budget module.
type BudgetData struct {
	OrganizerBudget *float64 `json:"organizer_budget,omitempty"`
	BudgetMin       *float64 `json:"budget_min,omitempty"`
	BudgetMax       *float64 `json:"budget_max,omitempty"`
	Currency        *string  `json:"currency,omitempty"`
	IsNegotiable    *bool    `json:"is_negotiable,omitempty"`
	PaymentTerms    *string  `json:"payment_terms,omitempty"`
	DepositPercent  *float64 `json:"deposit_percent,omitempty"`
}

// ParticipantData feeds the participant module.
type ParticipantData struct {
	ExpectedCount *int    `json:"expected_count,omitempty"`
	MinAge        *int    `json:"min_age,omitempty"`
	MaxAge        *int    `json:"max_age,omitempty"`
	AudienceType  *string `json:"audience_type,omitempty"`
}

// ContactData feeds the contact module.
type ContactData struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Company *string `json:"company,omitempty"`
}

// TeamData feeds the team module.
type TeamData struct {
	Size       *int     `json:"size,omitempty"`
	Roles      []string `json:"roles,omitempty"`
	Uniformed  *bool    `json:"uniformed,omitempty"`
	LeadName   *string  `json:"lead_name,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Certified  *bool    `json:"certified,omitempty"`
	Experience *int     `json:"experience,omitempty"`
}

// EquipmentData feeds the equipment module.
type EquipmentData struct {
	Items          []string `json:"items,omitempty"`
	SoundSystem    *bool    `json:"sound_system,omitempty"`
	Lighting       *bool    `json:"lighting,omitempty"`
	Generator      *bool    `json:"generator,omitempty"`
	ProvidedByWhom *string  `json:"provided_by_whom,omitempty"`
}

// MediaData feeds the media module.
type MediaData struct {
	Images   []string `json:"images,omitempty"`
	Videos   []string `json:"videos,omitempty"`
	CoverURL *string  `json:"cover_url,omitempty"`
}

// DocumentData feeds the document module.
type DocumentData struct {
	Documents []DocumentRef `json:"documents,omitempty"`
}

// DocumentRef is one attached document.
type DocumentRef struct {
	Name *string `json:"name,omitempty"`
	URL  *string `json:"url,omitempty"`
	Kind *string `json:"kind,omitempty"`
}

// TimelineData feeds the timeline module.
type TimelineData struct {
	Entries []TimelineEntry `json:"entries,omitempty"`
}

// TimelineEntry is one scheduled step.
type TimelineEntry struct {
	Time  *string `json:"time,omitempty"`
	Label *string `json:"label,omitempty"`
}

// ChecklistData feeds the checklist module.
type ChecklistData struct {
	Items []ChecklistItem `json:"items,omitempty"`
}

// ChecklistItem is one checklist entry.
type ChecklistItem struct {
	Label *string `json:"label,omitempty"`
	Done  *bool   `json:"done,omitempty"`
}

// LogisticsData feeds the logistics module.
type LogisticsData struct {
	LoadInNotes    *string `json:"load_in_notes,omitempty"`
	StorageNeeded  *bool   `json:"storage_needed,omitempty"`
	DeliveryWindow *string `json:"delivery_window,omitempty"`
	CrewAccess     *string `json:"crew_access,omitempty"`
}

// MenuData feeds the menu module.
type MenuData struct {
	Courses        []string `json:"courses,omitempty"`
	CuisineType    *string  `json:"cuisine_type,omitempty"`
	GuestCount     *int     `json:"guest_count,omitempty"`
	ServiceStyle   *string  `json:"service_style,omitempty"`
	DietaryOptions []string `json:"dietary_options,omitempty"`
	AlcoholService *bool    `json:"alcohol_service,omitempty"`
}

// VehicleData feeds the vehicle module.
type VehicleData struct {
	VehicleType    *string `json:"vehicle_type,omitempty"`
	Count          *int    `json:"count,omitempty"`
	Capacity       *int    `json:"capacity,omitempty"`
	WithDriver     *bool   `json:"with_driver,omitempty"`
	PickupPoint    *string `json:"pickup_point,omitempty"`
	DropoffPoint   *string `json:"dropoff_point,omitempty"`
	AirConditioned *bool   `json:"air_conditioned,omitempty"`
}

// MedicalData feeds the medical module.
type MedicalData struct {
	StaffCount     *int    `json:"staff_count,omitempty"`
	AmbulanceCount *int    `json:"ambulance_count,omitempty"`
	FirstAidPoint  *bool   `json:"first_aid_point,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// TicketingData feeds the ticketing module.
type TicketingData struct {
	TicketsTotal *int     `json:"tickets_total,omitempty"`
	TicketsSold  *int     `json:"tickets_sold,omitempty"`
	PriceMin     *float64 `json:"price_min,omitempty"`
	PriceMax     *float64 `json:"price_max,omitempty"`
	SalesURL     *string  `json:"sales_url,omitempty"`
}

// RatingData feeds the rating module.
type RatingData struct {
	Average *float64 `json:"average,omitempty"`
	Count   *int     `json:"count,omitempty"`
}

// Map carries one optional data slice per module kind. It is the unit the
// data adapter produces and the renderer consumes; instances are ephemeral
// and rebuilt per screen view.
type Map struct {
	Venue       *VenueData       `json:"venue,omitempty"`
	DateTime    *DateTimeData    `json:"datetime,omitempty"`
	Budget      *BudgetData      `json:"budget,omitempty"`
	Participant *ParticipantData `json:"participant,omitempty"`
	Contact     *ContactData     `json:"contact,omitempty"`
	Team        *TeamData        `json:"team,omitempty"`
	Equipment   *EquipmentData   `json:"equipment,omitempty"`
	Media       *MediaData       `json:"media,omitempty"`
	Document    *DocumentData    `json:"document,omitempty"`
	Timeline    *TimelineData    `json:"timeline,omitempty"`
	Checklist   *ChecklistData   `json:"checklist,omitempty"`
	Logistics   *LogisticsData   `json:"logistics,omitempty"`
	Menu        *MenuData        `json:"menu,omitempty"`
	Vehicle     *VehicleData     `json:"vehicle,omitempty"`
	Medical     *MedicalData     `json:"medical,omitempty"`
	Ticketing   *TicketingData   `json:"ticketing,omitempty"`
	Rating      *RatingData      `json:"rating,omitempty"`
}

// Slice returns the data slice for a module and whether it is populated.
// The switch covers the whole closed module set; an ID outside the set
// yields (nil, false).
func (m *Map) Slice(id module.ID) (any, bool) {
	if m == nil {
		return nil, false
	}
	switch id {
	case module.Venue:
		return m.Venue, m.Venue != nil
	case module.DateTime:
		return m.DateTime, m.DateTime != nil
	case module.Budget:
		return m.Budget, m.Budget != nil
	case module.Participant:
		return m.Participant, m.Participant != nil
	case module.Contact:
		return m.Contact, m.Contact != nil
	case module.Team:
		return m.Team, m.Team != nil
	case module.Equipment:
		return m.Equipment, m.Equipment != nil
	case module.Media:
		return m.Media, m.Media != nil
	case module.Document:
		return m.Document, m.Document != nil
	case module.Timeline:
		return m.Timeline, m.Timeline != nil
	case module.Checklist:
		return m.Checklist, m.Checklist != nil
	case module.Logistics:
		return m.Logistics, m.Logistics != nil
	case module.Menu:
		return m.Menu, m.Menu != nil
	case module.Vehicle:
		return m.Vehicle, m.Vehicle != nil
	case module.Medical:
		return m.Medical, m.Medical != nil
	case module.Ticketing:
		return m.Ticketing, m.Ticketing != nil
	case module.Rating:
		return m.Rating, m.Rating != nil
	default:
		return nil, false
	}
}
