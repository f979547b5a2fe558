package render

import (
	"github.com/artpar/offerview/domain/module"
	"github.com/artpar/offerview/domain/moduledata"
)

// moduleRenderer holds the display and form implementations for one
// module kind. A nil function means the module has no implementation for
// that mode and is skipped, not errored.
type moduleRenderer struct {
	display func(*moduledata.Map) []Node
	form    func(*moduledata.Map) []Node
}

// renderers is the dispatch table over the closed module set. Every ID in
// module.AllIDs has an entry; capability flags on the catalog definition
// and nil entries here must agree.
var renderers = map[module.ID]moduleRenderer{
	module.Venue:       {display: venueDisplay, form: venueForm},
	module.DateTime:    {display: dateTimeDisplay, form: dateTimeForm},
	module.Budget:      {display: budgetDisplay, form: budgetForm},
	module.Participant: {display: participantDisplay, form: participantForm},
	module.Contact:     {display: contactDisplay, form: contactForm},
	module.Team:        {display: teamDisplay, form: teamForm},
	module.Equipment:   {display: equipmentDisplay, form: equipmentForm},
	module.Media:       {display: mediaDisplay},
	module.Document:    {display: documentDisplay},
	module.Timeline:    {display: timelineDisplay, form: timelineForm},
	module.Checklist:   {display: checklistDisplay, form: checklistForm},
	module.Logistics:   {display: logisticsDisplay, form: logisticsForm},
	module.Menu:        {display: menuDisplay, form: menuForm},
	module.Vehicle:     {display: vehicleDisplay, form: vehicleForm},
	module.Medical:     {display: medicalDisplay, form: medicalForm},
	module.Ticketing:   {display: ticketingDisplay},
	module.Rating:      {display: ratingDisplay},
}

func venueDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataVenue(m); d != nil {
		b.text("name", "Name", d.Name)
		b.text("address", "Address", d.Address)
		b.text("city", "City", d.City)
		b.text("district", "District", d.District)
		b.intval("capacity", "Capacity", d.Capacity)
		b.text("indoor_outdoor", "Indoor/Outdoor", d.IndoorOutdoor)
		b.floatval("stage_width", "Stage width (m)", d.StageWidth)
		b.floatval("stage_depth", "Stage depth (m)", d.StageDepth)
		b.boolval("backstage", "Backstage", d.Backstage)
		b.floatval("power_kw", "Power (kW)", d.PowerKW)
		b.boolval("accessible", "Accessible", d.Accessible)
		b.intval("parking_spots", "Parking spots", d.ParkingSpots)
	}
	return b.done("No venue information provided")
}

func venueForm(m *moduledata.Map) []Node {
	d := dataVenue(m)
	if d == nil {
		d = &moduledata.VenueData{}
	}
	var f form
	f.field("name", "Name", deref(d.Name))
	f.field("address", "Address", deref(d.Address))
	f.field("city", "City", deref(d.City))
	f.field("capacity", "Capacity", deref(d.Capacity))
	f.field("indoor_outdoor", "Indoor/Outdoor", deref(d.IndoorOutdoor))
	f.field("stage_width", "Stage width (m)", deref(d.StageWidth))
	f.field("stage_depth", "Stage depth (m)", deref(d.StageDepth))
	f.field("backstage", "Backstage", deref(d.Backstage))
	return f.done()
}

func dateTimeDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataDateTime(m); d != nil {
		b.text("event_date", "Event date", d.EventDate)
		b.text("event_time", "Event time", d.EventTime)
		b.text("start_time", "Start", d.StartTime)
		b.text("end_time", "End", d.EndTime)
		b.floatval("duration_hours", "Duration (h)", d.DurationHours)
		b.boolval("flexible_dates", "Flexible dates", d.FlexibleDates)
		b.text("setup_time", "Setup", d.SetupTime)
		b.text("teardown_time", "Teardown", d.TeardownTime)
	}
	return b.done("No date or time set")
}

func dateTimeForm(m *moduledata.Map) []Node {
	d := dataDateTime(m)
	if d == nil {
		d = &moduledata.DateTimeData{}
	}
	var f form
	f.field("event_date", "Event date", deref(d.EventDate))
	f.field("event_time", "Event time", deref(d.EventTime))
	f.field("start_time", "Start", deref(d.StartTime))
	f.field("end_time", "End", deref(d.EndTime))
	f.field("duration_hours", "Duration (h)", deref(d.DurationHours))
	f.field("flexible_dates", "Flexible dates", deref(d.FlexibleDates))
	return f.done()
}

func budgetDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataBudget(m); d != nil {
		b.floatval("organizer_budget", "Organizer budget", d.OrganizerBudget)
		b.floatval("budget_min", "Budget min", d.BudgetMin)
		b.floatval("budget_max", "Budget max", d.BudgetMax)
		b.text("currency", "Currency", d.Currency)
		b.boolval("is_negotiable", "Negotiable", d.IsNegotiable)
		b.text("payment_terms", "Payment terms", d.PaymentTerms)
		b.floatval("deposit_percent", "Deposit (%)", d.DepositPercent)
	}
	return b.done("No budget information")
}

func budgetForm(m *moduledata.Map) []Node {
	d := dataBudget(m)
	if d == nil {
		d = &moduledata.BudgetData{}
	}
	var f form
	f.field("organizer_budget", "Organizer budget", deref(d.OrganizerBudget))
	f.field("budget_min", "Budget min", deref(d.BudgetMin))
	f.field("budget_max", "Budget max", deref(d.BudgetMax))
	f.field("currency", "Currency", deref(d.Currency))
	f.field("is_negotiable", "Negotiable", deref(d.IsNegotiable))
	f.field("payment_terms", "Payment terms", deref(d.PaymentTerms))
	return f.done()
}

func participantDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataParticipant(m); d != nil {
		b.intval("expected_count", "Expected participants", d.ExpectedCount)
		b.intval("min_age", "Minimum age", d.MinAge)
		b.intval("max_age", "Maximum age", d.MaxAge)
		b.text("audience_type", "Audience", d.AudienceType)
	}
	return b.done("No participant information")
}

func participantForm(m *moduledata.Map) []Node {
	d := dataParticipant(m)
	if d == nil {
		d = &moduledata.ParticipantData{}
	}
	var f form
	f.field("expected_count", "Expected participants", deref(d.ExpectedCount))
	f.field("min_age", "Minimum age", deref(d.MinAge))
	f.field("max_age", "Maximum age", deref(d.MaxAge))
	f.field("audience_type", "Audience", deref(d.AudienceType))
	return f.done()
}

func contactDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataContact(m); d != nil {
		b.text("name", "Name", d.Name)
		b.text("phone", "Phone", d.Phone)
		b.text("email", "Email", d.Email)
		b.text("company", "Company", d.Company)
	}
	return b.done("No contact information")
}

func contactForm(m *moduledata.Map) []Node {
	d := dataContact(m)
	if d == nil {
		d = &moduledata.ContactData{}
	}
	var f form
	f.field("name", "Name", deref(d.Name))
	f.field("phone", "Phone", deref(d.Phone))
	f.field("email", "Email", deref(d.Email))
	f.field("company", "Company", deref(d.Company))
	return f.done()
}

func teamDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataTeam(m); d != nil {
		b.intval("size", "Team size", d.Size)
		b.list("roles", "Roles", d.Roles)
		b.text("lead_name", "Team lead", d.LeadName)
		b.list("languages", "Languages", d.Languages)
		b.boolval("uniformed", "Uniformed", d.Uniformed)
		b.boolval("certified", "Certified", d.Certified)
		b.intval("experience", "Experience (years)", d.Experience)
	}
	return b.done("No team information")
}

func teamForm(m *moduledata.Map) []Node {
	d := dataTeam(m)
	if d == nil {
		d = &moduledata.TeamData{}
	}
	var f form
	f.field("size", "Team size", deref(d.Size))
	f.field("roles", "Roles", stringsOrNil(d.Roles))
	f.field("lead_name", "Team lead", deref(d.LeadName))
	f.field("uniformed", "Uniformed", deref(d.Uniformed))
	f.field("certified", "Certified", deref(d.Certified))
	return f.done()
}

func equipmentDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataEquipment(m); d != nil {
		b.list("items", "Equipment", d.Items)
		b.boolval("sound_system", "Sound system", d.SoundSystem)
		b.boolval("lighting", "Lighting", d.Lighting)
		b.boolval("generator", "Generator", d.Generator)
		b.text("provided_by_whom", "Provided by", d.ProvidedByWhom)
	}
	return b.done("No equipment listed")
}

func equipmentForm(m *moduledata.Map) []Node {
	d := dataEquipment(m)
	if d == nil {
		d = &moduledata.EquipmentData{}
	}
	var f form
	f.field("items", "Equipment", stringsOrNil(d.Items))
	f.field("sound_system", "Sound system", deref(d.SoundSystem))
	f.field("lighting", "Lighting", deref(d.Lighting))
	f.field("generator", "Generator", deref(d.Generator))
	f.field("provided_by_whom", "Provided by", deref(d.ProvidedByWhom))
	return f.done()
}

func mediaDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataMedia(m); d != nil {
		b.text("cover_url", "Cover", d.CoverURL)
		b.list("images", "Images", d.Images)
		b.list("videos", "Videos", d.Videos)
	}
	return b.done("No media uploaded")
}

func documentDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataDocument(m); d != nil {
		for _, doc := range d.Documents {
			n := Node{Type: NodeItem, Field: "document"}
			if doc.Name != nil {
				n.Label = *doc.Name
			}
			if doc.URL != nil {
				n.Value = *doc.URL
			}
			if doc.Kind != nil {
				n.Text = *doc.Kind
			}
			b.nodes = append(b.nodes, n)
		}
	}
	return b.done("No documents attached")
}

func timelineDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataTimeline(m); d != nil {
		for _, e := range d.Entries {
			n := Node{Type: NodeItem, Field: "entry"}
			if e.Time != nil {
				n.Label = *e.Time
			}
			if e.Label != nil {
				n.Text = *e.Label
			}
			b.nodes = append(b.nodes, n)
		}
	}
	return b.done("No timeline entries")
}

func timelineForm(m *moduledata.Map) []Node {
	var f form
	var entries any
	if d := dataTimeline(m); d != nil && len(d.Entries) > 0 {
		entries = d.Entries
	}
	f.field("entries", "Timeline", entries)
	return f.done()
}

func checklistDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataChecklist(m); d != nil {
		for _, item := range d.Items {
			n := Node{Type: NodeItem, Field: "item"}
			if item.Label != nil {
				n.Text = *item.Label
			}
			if item.Done != nil {
				n.Value = *item.Done
			}
			b.nodes = append(b.nodes, n)
		}
	}
	return b.done("No checklist items")
}

func checklistForm(m *moduledata.Map) []Node {
	var f form
	var items any
	if d := dataChecklist(m); d != nil && len(d.Items) > 0 {
		items = d.Items
	}
	f.field("items", "Checklist", items)
	return f.done()
}

func logisticsDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataLogistics(m); d != nil {
		b.text("load_in_notes", "Load-in", d.LoadInNotes)
		b.boolval("storage_needed", "Storage needed", d.StorageNeeded)
		b.text("delivery_window", "Delivery window", d.DeliveryWindow)
		b.text("crew_access", "Crew access", d.CrewAccess)
	}
	return b.done("No logistics information")
}

func logisticsForm(m *moduledata.Map) []Node {
	d := dataLogistics(m)
	if d == nil {
		d = &moduledata.LogisticsData{}
	}
	var f form
	f.field("load_in_notes", "Load-in", deref(d.LoadInNotes))
	f.field("storage_needed", "Storage needed", deref(d.StorageNeeded))
	f.field("delivery_window", "Delivery window", deref(d.DeliveryWindow))
	f.field("crew_access", "Crew access", deref(d.CrewAccess))
	return f.done()
}

func menuDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataMenu(m); d != nil {
		b.list("courses", "Courses", d.Courses)
		b.text("cuisine_type", "Cuisine", d.CuisineType)
		b.intval("guest_count", "Guests", d.GuestCount)
		b.text("service_style", "Service style", d.ServiceStyle)
		b.list("dietary_options", "Dietary options", d.DietaryOptions)
		b.boolval("alcohol_service", "Alcohol service", d.AlcoholService)
	}
	return b.done("No menu information")
}

func menuForm(m *moduledata.Map) []Node {
	d := dataMenu(m)
	if d == nil {
		d = &moduledata.MenuData{}
	}
	var f form
	f.field("courses", "Courses", stringsOrNil(d.Courses))
	f.field("cuisine_type", "Cuisine", deref(d.CuisineType))
	f.field("guest_count", "Guests", deref(d.GuestCount))
	f.field("service_style", "Service style", deref(d.ServiceStyle))
	f.field("dietary_options", "Dietary options", stringsOrNil(d.DietaryOptions))
	f.field("alcohol_service", "Alcohol service", deref(d.AlcoholService))
	return f.done()
}

func vehicleDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataVehicle(m); d != nil {
		b.text("vehicle_type", "Vehicle type", d.VehicleType)
		b.intval("count", "Count", d.Count)
		b.intval("capacity", "Capacity", d.Capacity)
		b.boolval("with_driver", "With driver", d.WithDriver)
		b.text("pickup_point", "Pickup", d.PickupPoint)
		b.text("dropoff_point", "Dropoff", d.DropoffPoint)
		b.boolval("air_conditioned", "Air conditioned", d.AirConditioned)
	}
	return b.done("No vehicle information")
}

func vehicleForm(m *moduledata.Map) []Node {
	d := dataVehicle(m)
	if d == nil {
		d = &moduledata.VehicleData{}
	}
	var f form
	f.field("vehicle_type", "Vehicle type", deref(d.VehicleType))
	f.field("count", "Count", deref(d.Count))
	f.field("capacity", "Capacity", deref(d.Capacity))
	f.field("with_driver", "With driver", deref(d.WithDriver))
	f.field("pickup_point", "Pickup", deref(d.PickupPoint))
	f.field("dropoff_point", "Dropoff", deref(d.DropoffPoint))
	return f.done()
}

func medicalDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataMedical(m); d != nil {
		b.intval("staff_count", "Medical staff", d.StaffCount)
		b.intval("ambulance_count", "Ambulances", d.AmbulanceCount)
		b.boolval("first_aid_point", "First aid point", d.FirstAidPoint)
		b.text("notes", "Notes", d.Notes)
	}
	return b.done("No medical coverage information")
}

func medicalForm(m *moduledata.Map) []Node {
	d := dataMedical(m)
	if d == nil {
		d = &moduledata.MedicalData{}
	}
	var f form
	f.field("staff_count", "Medical staff", deref(d.StaffCount))
	f.field("ambulance_count", "Ambulances", deref(d.AmbulanceCount))
	f.field("first_aid_point", "First aid point", deref(d.FirstAidPoint))
	f.field("notes", "Notes", deref(d.Notes))
	return f.done()
}

func ticketingDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataTicketing(m); d != nil {
		b.intval("tickets_total", "Tickets total", d.TicketsTotal)
		b.intval("tickets_sold", "Tickets sold", d.TicketsSold)
		b.floatval("price_min", "Price min", d.PriceMin)
		b.floatval("price_max", "Price max", d.PriceMax)
		b.text("sales_url", "Sales URL", d.SalesURL)
	}
	return b.done("No ticketing information")
}

func ratingDisplay(m *moduledata.Map) []Node {
	var b body
	if d := dataRating(m); d != nil {
		b.floatval("average", "Average rating", d.Average)
		b.intval("count", "Review count", d.Count)
	}
	return b.done("Not rated yet")
}

// stringsOrNil turns an empty slice into a nil form value.
func stringsOrNil(s []string) any {
	if len(s) == 0 {
		return nil
	}
	return s
}

// Typed slice accessors tolerate a nil map.

func dataVenue(m *moduledata.Map) *moduledata.VenueData {
	if m == nil {
		return nil
	}
	return m.Venue
}

func dataDateTime(m *moduledata.Map) *moduledata.DateTimeData {
	if m == nil {
		return nil
	}
	return m.DateTime
}

func dataBudget(m *moduledata.Map) *moduledata.BudgetData {
	if m == nil {
		return nil
	}
	return m.Budget
}

func dataParticipant(m *moduledata.Map) *moduledata.ParticipantData {
	if m == nil {
		return nil
	}
	return m.Participant
}

func dataContact(m *moduledata.Map) *moduledata.ContactData {
	if m == nil {
		return nil
	}
	return m.Contact
}

func dataTeam(m *moduledata.Map) *moduledata.TeamData {
	if m == nil {
		return nil
	}
	return m.Team
}

func dataEquipment(m *moduledata.Map) *moduledata.EquipmentData {
	if m == nil {
		return nil
	}
	return m.Equipment
}

func dataMedia(m *moduledata.Map) *moduledata.MediaData {
	if m == nil {
		return nil
	}
	return m.Media
}

func dataDocument(m *moduledata.Map) *moduledata.DocumentData {
	if m == nil {
		return nil
	}
	return m.Document
}

func dataTimeline(m *moduledata.Map) *moduledata.TimelineData {
	if m == nil {
		return nil
	}
	return m.Timeline
}

func dataChecklist(m *moduledata.Map) *moduledata.ChecklistData {
	if m == nil {
		return nil
	}
	return m.Checklist
}

func dataLogistics(m *moduledata.Map) *moduledata.LogisticsData {
	if m == nil {
		return nil
	}
	return m.Logistics
}

func dataMenu(m *moduledata.Map) *moduledata.MenuData {
	if m == nil {
		return nil
	}
	return m.Menu
}

func dataVehicle(m *moduledata.Map) *moduledata.VehicleData {
	if m == nil {
		return nil
	}
	return m.Vehicle
}

func dataMedical(m *moduledata.Map) *moduledata.MedicalData {
	if m == nil {
		return nil
	}
	return m.Medical
}

func dataTicketing(m *moduledata.Map) *moduledata.TicketingData {
	if m == nil {
		return nil
	}
	return m.Ticketing
}

func dataRating(m *moduledata.Map) *moduledata.RatingData {
	if m == nil {
		return nil
	}
	return m.Rating
}
