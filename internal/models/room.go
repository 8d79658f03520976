package models

// Room is a bookable room with its per-day availability as returned by
// GET /api/rooms.
type Room struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Capacity     int               `json:"capacity"`
	Location     string            `json:"location"`
	Description  string            `json:"description"`
	Amenities    []string          `json:"amenities"`
	Images       []string          `json:"images"`
	Availability []DayAvailability `json:"availability"`
}

// DayAvailability lists the time slots of one calendar day.
// Slot intervals are assumed disjoint by the server.
type DayAvailability struct {
	Date      string     `json:"date"` // YYYY-MM-DD
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// TimeSlot is a single bookable interval within a day.
type TimeSlot struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"` // HH:MM
	EndTime     string `json:"endTime"`   // HH:MM
	IsAvailable bool   `json:"isAvailable"`
}

// HasAmenity reports whether the room lists the given amenity.
func (r Room) HasAmenity(a string) bool {
	for _, have := range r.Amenities {
		if have == a {
			return true
		}
	}
	return false
}

// AvailabilityOn returns the room's availability entry for the given
// YYYY-MM-DD date, if any.
func (r Room) AvailabilityOn(date string) (DayAvailability, bool) {
	for _, day := range r.Availability {
		if day.Date == date {
			return day, true
		}
	}
	return DayAvailability{}, false
}

// RoomData is the body for creating or updating a room (admin only).
type RoomData struct {
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}
