package app

import (
	"github.com/artpar/offerview/domain/moduledata"
	"github.com/artpar/offerview/domain/offer"
)

// The transform functions below are the data adapter: each converts the
// externally-shaped entities into one module's data slice. All of them
// are pure and total — a nil entity or a missing upstream field yields a
// nil module field, never a zero or empty-string substitute, and
// timestamp strings pass through verbatim. Empty-state decisions belong
// to the renderer, not here.

// TransformOfferToModuleData composes the per-module transforms into one
// data map for a screen view. Slices for modules whose source entity is
// absent stay nil.
func TransformOfferToModuleData(o *offer.Offer, v *offer.Venue, ev *offer.EventDetails, organizerBudget *float64) moduledata.Map {
	return moduledata.Map{
		Venue:       TransformVenueData(v),
		DateTime:    TransformDateTimeData(ev),
		Budget:      TransformBudgetData(o, organizerBudget),
		Participant: TransformParticipantData(ev),
		Contact:     TransformContactData(o),
		Team:        TransformTeamData(o),
		Equipment:   TransformEquipmentData(o),
		Media:       TransformMediaData(o),
		Document:    TransformDocumentData(o),
		Timeline:    TransformTimelineData(ev),
		Checklist:   TransformChecklistData(ev),
		Logistics:   TransformLogisticsData(ev),
		Menu:        TransformMenuData(o),
		Vehicle:     TransformVehicleData(o, ev),
		Medical:     TransformMedicalData(o),
		Ticketing:   TransformTicketingData(ev),
		Rating:      TransformRatingData(o),
	}
}

// TransformVenueData maps a venue record onto the venue module.
func TransformVenueData(v *offer.Venue) *moduledata.VenueData {
	if v == nil {
		return nil
	}
	return &moduledata.VenueData{
		Name:          v.Name,
		Address:       v.Address,
		City:          v.City,
		District:      v.District,
		Capacity:      v.Capacity,
		IndoorOutdoor: v.IndoorOutdoor,
		StageWidth:    v.StageWidth,
		StageDepth:    v.StageDepth,
		Backstage:     v.Backstage,
		PowerKW:       v.PowerKW,
		Accessible:    v.Accessible,
		ParkingSpots:  v.ParkingSpots,
	}
}

// TransformDateTimeData maps event details onto the datetime module.
// The organizer's concert time becomes the module's event time.
func TransformDateTimeData(ev *offer.EventDetails) *moduledata.DateTimeData {
	if ev == nil {
		return nil
	}
	return &moduledata.DateTimeData{
		EventDate:     ev.EventDate,
		EventTime:     ev.ConcertTime,
		StartTime:     ev.StartTime,
		EndTime:       ev.EndTime,
		DurationHours: ev.DurationHours,
		FlexibleDates: ev.FlexibleDates,
		SetupTime:     ev.SetupTime,
		TeardownTime:  ev.TeardownTime,
	}
}

// TransformBudgetData maps offer pricing and the organizer's budget onto
// the budget module. Either source may be absent independently.
func TransformBudgetData(o *offer.Offer, organizerBudget *float64) *moduledata.BudgetData {
	if o == nil && organizerBudget == nil {
		return nil
	}
	d := &moduledata.BudgetData{OrganizerBudget: organizerBudget}
	if o != nil {
		d.BudgetMin = o.PriceMin
		d.BudgetMax = o.PriceMax
		d.Currency = o.Currency
		d.IsNegotiable = o.IsNegotiable
		d.PaymentTerms = o.PaymentTerms
		d.DepositPercent = o.DepositPercent
	}
	return d
}

// TransformParticipantData maps event details onto the participant module.
func TransformParticipantData(ev *offer.EventDetails) *moduledata.ParticipantData {
	if ev == nil {
		return nil
	}
	return &moduledata.ParticipantData{
		ExpectedCount: ev.ExpectedParticipants,
		MinAge:        ev.MinAge,
		MaxAge:        ev.MaxAge,
		AudienceType:  ev.AudienceType,
	}
}

// TransformContactData maps offer contact fields onto the contact module.
func TransformContactData(o *offer.Offer) *moduledata.ContactData {
	if o == nil {
		return nil
	}
	return &moduledata.ContactData{
		Name:    o.ContactName,
		Phone:   o.ContactPhone,
		Email:   o.ContactEmail,
		Company: o.Company,
	}
}

// TransformTeamData maps offer crew fields onto the team module.
func TransformTeamData(o *offer.Offer) *moduledata.TeamData {
	if o == nil {
		return nil
	}
	return &moduledata.TeamData{
		Size:       o.TeamSize,
		Roles:      o.TeamRoles,
		LeadName:   o.TeamLead,
		Languages:  o.TeamLanguages,
		Uniformed:  o.Uniformed,
		Certified:  o.Certified,
		Experience: o.ExperienceYears,
	}
}

// TransformEquipmentData maps offer equipment fields onto the equipment
// module.
func TransformEquipmentData(o *offer.Offer) *moduledata.EquipmentData {
	if o == nil {
		return nil
	}
	return &moduledata.EquipmentData{
		Items:          o.EquipmentItems,
		SoundSystem:    o.SoundSystem,
		Lighting:       o.Lighting,
		Generator:      o.Generator,
		ProvidedByWhom: o.EquipmentProvidedBy,
	}
}

// TransformMediaData maps offer media onto the media module. An offer
// without images yields the empty default, not a fabricated list.
func TransformMediaData(o *offer.Offer) *moduledata.MediaData {
	if o == nil {
		return nil
	}
	return &moduledata.MediaData{
		Images:   o.Images,
		Videos:   o.Videos,
		CoverURL: o.CoverURL,
	}
}

// TransformDocumentData maps offer attachments onto the document module.
func TransformDocumentData(o *offer.Offer) *moduledata.DocumentData {
	if o == nil {
		return nil
	}
	d := &moduledata.DocumentData{}
	for _, doc := range o.Documents {
		d.Documents = append(d.Documents, moduledata.DocumentRef{
			Name: doc.Name,
			URL:  doc.URL,
			Kind: doc.Kind,
		})
	}
	return d
}

// TransformTimelineData maps the organizer's run sheet onto the timeline
// module.
func TransformTimelineData(ev *offer.EventDetails) *moduledata.TimelineData {
	if ev == nil {
		return nil
	}
	d := &moduledata.TimelineData{}
	for _, e := range ev.Timeline {
		d.Entries = append(d.Entries, moduledata.TimelineEntry{
			Time:  e.Time,
			Label: e.Label,
		})
	}
	return d
}

// TransformChecklistData maps the organizer's checklist onto the
// checklist module.
func TransformChecklistData(ev *offer.EventDetails) *moduledata.ChecklistData {
	if ev == nil {
		return nil
	}
	d := &moduledata.ChecklistData{}
	for _, item := range ev.Checklist {
		d.Items = append(d.Items, moduledata.ChecklistItem{
			Label: item.Label,
			Done:  item.Done,
		})
	}
	return d
}

// TransformLogisticsData maps event details onto the logistics module.
func TransformLogisticsData(ev *offer.EventDetails) *moduledata.LogisticsData {
	if ev == nil {
		return nil
	}
	return &moduledata.LogisticsData{
		LoadInNotes:    ev.LoadInNotes,
		StorageNeeded:  ev.StorageNeeded,
		DeliveryWindow: ev.DeliveryWindow,
		CrewAccess:     ev.CrewAccess,
	}
}

// TransformMenuData maps offer catering fields onto the menu module.
func TransformMenuData(o *offer.Offer) *moduledata.MenuData {
	if o == nil {
		return nil
	}
	return &moduledata.MenuData{
		Courses:        o.MenuCourses,
		CuisineType:    o.CuisineType,
		GuestCount:     o.GuestCount,
		ServiceStyle:   o.ServiceStyle,
		DietaryOptions: o.DietaryOptions,
		AlcoholService: o.AlcoholService,
	}
}

// TransformVehicleData maps offer transport fields and the organizer's
// pickup points onto the vehicle module.
func TransformVehicleData(o *offer.Offer, ev *offer.EventDetails) *moduledata.VehicleData {
	if o == nil && ev == nil {
		return nil
	}
	d := &moduledata.VehicleData{}
	if o != nil {
		d.VehicleType = o.VehicleType
		d.Count = o.VehicleCount
		d.Capacity = o.VehicleCapacity
		d.WithDriver = o.WithDriver
		d.AirConditioned = o.AirConditioned
	}
	if ev != nil {
		d.PickupPoint = ev.PickupPoint
		d.DropoffPoint = ev.DropoffPoint
	}
	return d
}

// TransformMedicalData maps offer medical fields onto the medical module.
func TransformMedicalData(o *offer.Offer) *moduledata.MedicalData {
	if o == nil {
		return nil
	}
	return &moduledata.MedicalData{
		StaffCount:     o.MedicalStaffCount,
		AmbulanceCount: o.AmbulanceCount,
		FirstAidPoint:  o.FirstAidPoint,
		Notes:          o.MedicalNotes,
	}
}

// TransformTicketingData maps event details onto the ticketing module.
func TransformTicketingData(ev *offer.EventDetails) *moduledata.TicketingData {
	if ev == nil {
		return nil
	}
	return &moduledata.TicketingData{
		TicketsTotal: ev.TicketsTotal,
		TicketsSold:  ev.TicketsSold,
		PriceMin:     ev.TicketPriceMin,
		PriceMax:     ev.TicketPriceMax,
		SalesURL:     ev.SalesURL,
	}
}

// TransformRatingData maps offer reputation fields onto the rating module.
func TransformRatingData(o *offer.Offer) *moduledata.RatingData {
	if o == nil {
		return nil
	}
	return &moduledata.RatingData{
		Average: o.RatingAverage,
		Count:   o.RatingCount,
	}
}
