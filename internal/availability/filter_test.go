package availability

import (
	"reflect"
	"testing"

	"github.com/meetspace/roomclient/internal/models"
)

func sampleRooms() []models.Room {
	return []models.Room{
		{
			ID:          "r1",
			Name:        "Board Room",
			Capacity:    4,
			Location:    "Floor 1",
			Description: "Quiet corner room",
			Amenities:   []string{"whiteboard"},
			Availability: []models.DayAvailability{
				{Date: "2026-09-01", TimeSlots: []models.TimeSlot{
					{ID: "s1", StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
				}},
			},
		},
		{
			ID:          "r2",
			Name:        "Auditorium",
			Capacity:    10,
			Location:    "Floor 2",
			Description: "Large room with projector",
			Amenities:   []string{"projector", "whiteboard"},
			Availability: []models.DayAvailability{
				{Date: "2026-09-01", TimeSlots: []models.TimeSlot{
					{ID: "s2", StartTime: "09:00", EndTime: "10:00", IsAvailable: false},
				}},
				{Date: "2026-09-02", TimeSlots: []models.TimeSlot{
					{ID: "s3", StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
				}},
			},
		},
		{
			ID:          "r3",
			Name:        "Huddle Space",
			Capacity:    2,
			Location:    "Floor 1",
			Description: "Small space for calls",
			Amenities:   []string{"screen"},
		},
	}
}

func ids(rooms []models.Room) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterRooms(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"no criteria returns all in order", Criteria{}, []string{"r1", "r2", "r3"}},
		{"search matches name case-insensitively", Criteria{SearchText: "board"}, []string{"r1"}},
		{"search matches description", Criteria{SearchText: "projector"}, []string{"r2"}},
		{"search matches location", Criteria{SearchText: "floor 2"}, []string{"r2"}},
		{"location is exact match", Criteria{Location: "Floor 1"}, []string{"r1", "r3"}},
		{"location mismatch excludes all", Criteria{Location: "Floor 9"}, []string{}},
		{"min capacity keeps larger rooms", Criteria{MinCapacity: 8}, []string{"r2"}},
		{"min capacity keeps equal rooms", Criteria{MinCapacity: 4}, []string{"r1", "r2"}},
		{"date requires an open slot", Criteria{Date: "2026-09-01"}, []string{"r1"}},
		{"date matches a later day entry", Criteria{Date: "2026-09-02"}, []string{"r2"}},
		{"date without entry excludes", Criteria{Date: "2026-09-03"}, []string{}},
		{"single amenity", Criteria{RequiredAmenities: []string{"whiteboard"}}, []string{"r1", "r2"}},
		{"amenity superset required", Criteria{RequiredAmenities: []string{"whiteboard", "projector"}}, []string{"r2"}},
		{"criteria are ANDed", Criteria{Location: "Floor 1", MinCapacity: 3}, []string{"r1"}},
		{"all together", Criteria{SearchText: "room", MinCapacity: 5, Date: "2026-09-02", RequiredAmenities: []string{"projector"}}, []string{"r2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterRooms(sampleRooms(), tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterRooms() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterRoomsEmptyCriteriaReturnsInputUnchanged(t *testing.T) {
	rooms := sampleRooms()
	got := FilterRooms(rooms, Criteria{})
	if !reflect.DeepEqual(got, rooms) {
		t.Errorf("empty criteria changed the result: %v", ids(got))
	}
}

func TestFilterRoomsDoesNotMutateInput(t *testing.T) {
	rooms := sampleRooms()
	before := ids(rooms)
	FilterRooms(rooms, Criteria{Location: "Floor 2"})
	if !reflect.DeepEqual(ids(rooms), before) {
		t.Error("input slice was mutated")
	}
}

// Adding a required amenity must never grow the result set.
func TestAmenityFilterMonotonic(t *testing.T) {
	rooms := sampleRooms()
	required := []string{}
	prev := len(FilterRooms(rooms, Criteria{RequiredAmenities: required}))
	for _, amenity := range []string{"whiteboard", "projector", "screen"} {
		required = append(required, amenity)
		n := len(FilterRooms(rooms, Criteria{RequiredAmenities: required}))
		if n > prev {
			t.Fatalf("result grew from %d to %d after requiring %q", prev, n, amenity)
		}
		prev = n
	}
}

func TestLocationsAndAmenities(t *testing.T) {
	rooms := sampleRooms()

	wantLocations := []string{"Floor 1", "Floor 2"}
	if got := Locations(rooms); !reflect.DeepEqual(got, wantLocations) {
		t.Errorf("Locations() = %v, want %v", got, wantLocations)
	}

	wantAmenities := []string{"projector", "screen", "whiteboard"}
	if got := Amenities(rooms); !reflect.DeepEqual(got, wantAmenities) {
		t.Errorf("Amenities() = %v, want %v", got, wantAmenities)
	}
}
