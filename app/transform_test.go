package app_test

import (
	"reflect"
	"testing"

	"github.com/artpar/offerview/app"
	"github.com/artpar/offerview/domain/module"
	"github.com/artpar/offerview/domain/offer"
)

func strptr(s string) *string     { return &s }
func intptr(i int) *int           { return &i }
func floatptr(f float64) *float64 { return &f }
func boolptr(b bool) *bool        { return &b }

func TestTransformVenueDataPreservesOnlyPresentFields(t *testing.T) {
	v := &offer.Venue{
		Capacity:      intptr(4200),
		IndoorOutdoor: strptr("outdoor"),
	}
	d := app.TransformVenueData(v)
	if d == nil {
		t.Fatal("present venue must yield a data slice")
	}
	if d.Capacity == nil || *d.Capacity != 4200 {
		t.Errorf("capacity = %v, want 4200", d.Capacity)
	}
	if d.IndoorOutdoor == nil || *d.IndoorOutdoor != "outdoor" {
		t.Errorf("indoor_outdoor = %v, want outdoor", d.IndoorOutdoor)
	}
	// Absent upstream fields stay nil, never zero values.
	if d.Name != nil || d.Address != nil || d.City != nil || d.District != nil {
		t.Error("missing string fields must remain nil")
	}
	if d.StageWidth != nil || d.PowerKW != nil || d.ParkingSpots != nil {
		t.Error("missing numeric fields must remain nil")
	}
	if d.Backstage != nil || d.Accessible != nil {
		t.Error("missing bool fields must remain nil")
	}
}

func TestTransformNilEntitiesYieldNilSlices(t *testing.T) {
	m := app.TransformOfferToModuleData(nil, nil, nil, nil)
	for _, id := range module.AllIDs() {
		if _, ok := m.Slice(id); ok {
			t.Errorf("module %s: expected no data slice for nil inputs", id)
		}
	}
}

func TestTransformDateTimeMapsConcertTime(t *testing.T) {
	ev := &offer.EventDetails{ConcertTime: strptr("20:00")}
	d := app.TransformDateTimeData(ev)
	if d == nil || d.EventTime == nil || *d.EventTime != "20:00" {
		t.Fatalf("event time = %+v, want 20:00", d)
	}
	if d.EventDate != nil || d.StartTime != nil {
		t.Error("absent time fields must remain nil")
	}
}

func TestTransformBudgetDataSources(t *testing.T) {
	if d := app.TransformBudgetData(nil, nil); d != nil {
		t.Fatalf("both sources nil: got %+v, want nil", d)
	}

	d := app.TransformBudgetData(nil, floatptr(50000))
	if d == nil || d.OrganizerBudget == nil || *d.OrganizerBudget != 50000 {
		t.Fatalf("organizer budget alone should populate the slice, got %+v", d)
	}
	if d.BudgetMin != nil || d.Currency != nil {
		t.Error("offer-sourced fields must remain nil without an offer")
	}

	o := &offer.Offer{PriceMin: floatptr(1200), Currency: strptr("TRY"), IsNegotiable: boolptr(true)}
	d = app.TransformBudgetData(o, nil)
	if d == nil || d.BudgetMin == nil || *d.BudgetMin != 1200 {
		t.Fatalf("offer pricing not carried over: %+v", d)
	}
	if d.OrganizerBudget != nil {
		t.Error("organizer budget must remain nil when not supplied")
	}
}

func TestTransformVehicleDataMergesBothSources(t *testing.T) {
	o := &offer.Offer{VehicleType: strptr("minibus"), VehicleCount: intptr(3)}
	ev := &offer.EventDetails{PickupPoint: strptr("Taksim"), DropoffPoint: strptr("KüçükÇiftlik Park")}

	d := app.TransformVehicleData(o, ev)
	if d == nil {
		t.Fatal("expected vehicle data")
	}
	if d.VehicleType == nil || *d.VehicleType != "minibus" || d.Count == nil || *d.Count != 3 {
		t.Errorf("offer side not carried: %+v", d)
	}
	if d.PickupPoint == nil || *d.PickupPoint != "Taksim" || d.DropoffPoint == nil {
		t.Errorf("event side not carried: %+v", d)
	}

	if d := app.TransformVehicleData(nil, ev); d == nil || d.VehicleType != nil || d.PickupPoint == nil {
		t.Errorf("event-only merge wrong: %+v", d)
	}
}

func TestTransformCateringScreenScenario(t *testing.T) {
	o := &offer.Offer{
		ServiceCategory: "catering",
		CuisineType:     strptr("anatolian"),
		GuestCount:      intptr(300),
		Images:          []string{},
	}
	v := &offer.Venue{Capacity: intptr(300), City: strptr("İstanbul")}
	ev := &offer.EventDetails{ConcertTime: strptr("20:00")}
	budget := floatptr(50000)

	m := app.TransformOfferToModuleData(o, v, ev, budget)

	if m.DateTime == nil || m.DateTime.EventTime == nil || *m.DateTime.EventTime != "20:00" {
		t.Error("event time did not survive the transform")
	}
	if m.Budget == nil || m.Budget.OrganizerBudget == nil || *m.Budget.OrganizerBudget != 50000 {
		t.Error("organizer budget did not survive the transform")
	}
	if m.Venue == nil || m.Venue.Capacity == nil || *m.Venue.Capacity != 300 {
		t.Error("venue capacity did not survive the transform")
	}
	if m.Menu == nil || m.Menu.GuestCount == nil || *m.Menu.GuestCount != 300 {
		t.Error("guest count did not survive the transform")
	}
	// An explicitly empty image list stays empty rather than becoming nil
	// or gaining placeholders.
	if m.Media == nil || m.Media.Images == nil || len(m.Media.Images) != 0 {
		t.Errorf("media = %+v, want empty non-nil image list", m.Media)
	}
}

func TestTransformIsDeterministic(t *testing.T) {
	o := &offer.Offer{
		ServiceCategory: "security",
		TeamSize:        intptr(12),
		Certified:       boolptr(true),
		ContactName:     strptr("Deniz Acar"),
		RatingAverage:   floatptr(4.7),
		RatingCount:     intptr(96),
	}
	ev := &offer.EventDetails{
		ExpectedParticipants: intptr(5000),
		Checklist: []offer.ChecklistItem{
			{Label: strptr("Perimeter sweep"), Done: boolptr(true)},
			{Label: strptr("Radio check"), Done: boolptr(false)},
		},
	}

	first := app.TransformOfferToModuleData(o, nil, ev, nil)
	second := app.TransformOfferToModuleData(o, nil, ev, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same inputs produced different data maps")
	}
	if first.Checklist == nil || len(first.Checklist.Items) != 2 {
		t.Fatalf("checklist = %+v, want 2 items", first.Checklist)
	}
}
