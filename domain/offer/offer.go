// Package offer mirrors the externally-owned entity shapes the data
// adapter consumes: a provider's offer, a venue record, and free-form
// event details. The surrounding marketplace owns these schemas; the
// engine only reads the fields enumerated here and tolerates any of them
// being absent.
package offer

// Offer is a provider's offer for a service request.
type Offer struct {
	ServiceCategory string  `json:"service_category"`
	SubCategory     *string `json:"sub_category,omitempty"`

	// Pricing
	PriceMin       *float64 `json:"price_min,omitempty"`
	PriceMax       *float64 `json:"price_max,omitempty"`
	Currency       *string  `json:"currency,omitempty"`
	IsNegotiable   *bool    `json:"is_negotiable,omitempty"`
	PaymentTerms   *string  `json:"payment_terms,omitempty"`
	DepositPercent *float64 `json:"deposit_percent,omitempty"`

	// Crew
	TeamSize        *int     `json:"team_size,omitempty"`
	TeamRoles       []string `json:"team_roles,omitempty"`
	TeamLead        *string  `json:"team_lead,omitempty"`
	TeamLanguages   []string `json:"team_languages,omitempty"`
	Uniformed       *bool    `json:"uniformed,omitempty"`
	Certified       *bool    `json:"certified,omitempty"`
	ExperienceYears *int     `json:"experience_years,omitempty"`

	// Equipment
	EquipmentItems      []string `json:"equipment_items,omitempty"`
	EquipmentProvidedBy *string  `json:"equipment_provided_by,omitempty"`
	SoundSystem         *bool    `json:"sound_system,omitempty"`
	Lighting            *bool    `json:"lighting,omitempty"`
	Generator           *bool    `json:"generator,omitempty"`

	// Media and documents
	Images    []string   `json:"images,omitempty"`
	Videos    []string   `json:"videos,omitempty"`
	CoverURL  *string    `json:"cover_url,omitempty"`
	Documents []Document `json:"documents,omitempty"`

	// Contact
	ContactName  *string `json:"contact_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Company      *string `json:"company,omitempty"`

	// Catering
	MenuCourses    []string `json:"menu_courses,omitempty"`
	CuisineType    *string  `json:"cuisine_type,omitempty"`
	GuestCount     *int     `json:"guest_count,omitempty"`
	ServiceStyle   *string  `json:"service_style,omitempty"`
	DietaryOptions []string `json:"dietary_options,omitempty"`
	AlcoholService *bool    `json:"alcohol_service,omitempty"`

	// Transport
	VehicleType     *string `json:"vehicle_type,omitempty"`
	VehicleCount    *int    `json:"vehicle_count,omitempty"`
	VehicleCapacity *int    `json:"vehicle_capacity,omitempty"`
	WithDriver      *bool   `json:"with_driver,omitempty"`
	AirConditioned  *bool   `json:"air_conditioned,omitempty"`

	// Health
	MedicalStaffCount *int    `json:"medical_staff_count,omitempty"`
	AmbulanceCount    *int    `json:"ambulance_count,omitempty"`
	FirstAidPoint     *bool   `json:"first_aid_point,omitempty"`
	MedicalNotes      *string `json:"medical_notes,omitempty"`

	// Reputation
	RatingAverage *float64 `json:"rating_average,omitempty"`
	RatingCount   *int     `json:"rating_count,omitempty"`
}

// Document is one attachment on an offer.
type Document struct {
	Name *string `json:"name,omitempty"`
	URL  *string `json:"url,omitempty"`
	Kind *string `json:"kind,omitempty"`
}

// Venue is the marketplace's venue record.
type Venue struct {
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

// EventDetails is the organizer's free-form event description.
// Time and date fields are opaque strings owned upstream; the engine
// passes them through verbatim.
type EventDetails struct {
	EventDate     *string  `json:"event_date,omitempty"`
	ConcertTime   *string  `json:"concert_time,omitempty"`
	StartTime     *string  `json:"start_time,omitempty"`
	EndTime       *string  `json:"end_time,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	FlexibleDates *bool    `json:"flexible_dates,omitempty"`
	SetupTime     *string  `json:"setup_time,omitempty"`
	TeardownTime  *string  `json:"teardown_time,omitempty"`

	ExpectedParticipants *int    `json:"expected_participants,omitempty"`
	MinAge               *int    `json:"min_age,omitempty"`
	MaxAge               *int    `json:"max_age,omitempty"`
	AudienceType         *string `json:"audience_type,omitempty"`

	Timeline  []TimelineEntry `json:"timeline,omitempty"`
	Checklist []ChecklistItem `json:"checklist,omitempty"`

	LoadInNotes    *string `json:"load_in_notes,omitempty"`
	StorageNeeded  *bool   `json:"storage_needed,omitempty"`
	DeliveryWindow *string `json:"delivery_window,omitempty"`
	CrewAccess     *string `json:"crew_access,omitempty"`

	PickupPoint  *string `json:"pickup_point,omitempty"`
	DropoffPoint *string `json:"dropoff_point,omitempty"`

	TicketsTotal   *int     `json:"tickets_total,omitempty"`
	TicketsSold    *int     `json:"tickets_sold,omitempty"`
	TicketPriceMin *float64 `json:"ticket_price_min,omitempty"`
	TicketPriceMax *float64 `json:"ticket_price_max,omitempty"`
	SalesURL       *string  `json:"sales_url,omitempty"`
}

// TimelineEntry is one scheduled step in the organizer's run sheet.
type TimelineEntry struct {
	Time  *string `json:"time,omitempty"`
	Label *string `json:"label,omitempty"`
}

// ChecklistItem is one entry on the organizer's checklist.
type ChecklistItem struct {
	Label *string `json:"label,omitempty"`
	Done  *bool   `json:"done,omitempty"`
}
