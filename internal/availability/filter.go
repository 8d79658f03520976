// Package availability computes which rooms match user-chosen search and
// filter criteria. Everything here is pure: no I/O, no clock, no mutation
// of the input.
package availability

import (
	"sort"
	"strings"

	"github.com/meetspace/roomclient/internal/models"
)

// Criteria are the user-selected filters. Zero-valued fields are no-ops:
// they exclude nothing.
type Criteria struct {
	SearchText        string
	Location          string
	MinCapacity       int
	Date              string // YYYY-MM-DD
	RequiredAmenities []string
}

// Empty reports whether no filter is active.
func (c Criteria) Empty() bool {
	return c.SearchText == "" && c.Location == "" && c.MinCapacity == 0 &&
		c.Date == "" && len(c.RequiredAmenities) == 0
}

// FilterRooms returns the rooms matching all supplied criteria, preserving
// input order. Each predicate is evaluated against the room itself, never
// against a prior predicate's output, so the result cannot depend on
// filter ordering.
func FilterRooms(rooms []models.Room, c Criteria) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if matches(room, c) {
			out = append(out, room)
		}
	}
	return out
}

func matches(room models.Room, c Criteria) bool {
	if c.SearchText != "" && !matchesSearch(room, c.SearchText) {
		return false
	}
	if c.Location != "" && room.Location != c.Location {
		return false
	}
	if c.MinCapacity > 0 && room.Capacity < c.MinCapacity {
		return false
	}
	if c.Date != "" && !availableOn(room, c.Date) {
		return false
	}
	for _, amenity := range c.RequiredAmenities {
		if !room.HasAmenity(amenity) {
			return false
		}
	}
	return true
}

// matchesSearch does a case-insensitive substring match against name,
// location and description; any one field matching is enough.
func matchesSearch(room models.Room, text string) bool {
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(room.Name), needle) ||
		strings.Contains(strings.ToLower(room.Location), needle) ||
		strings.Contains(strings.ToLower(room.Description), needle)
}

// availableOn reports whether the room has an availability entry for the
// date with at least one open slot.
func availableOn(room models.Room, date string) bool {
	day, ok := room.AvailabilityOn(date)
	if !ok {
		return false
	}
	for _, slot := range day.TimeSlots {
		if slot.IsAvailable {
			return true
		}
	}
	return false
}

// Locations returns the distinct room locations, sorted. The dashboard
// uses it to populate the location filter dropdown.
func Locations(rooms []models.Room) []string {
	return distinct(rooms, func(r models.Room) []string {
		if r.Location == "" {
			return nil
		}
		return []string{r.Location}
	})
}

// Amenities returns the distinct amenities across all rooms, sorted.
func Amenities(rooms []models.Room) []string {
	return distinct(rooms, func(r models.Room) []string { return r.Amenities })
}

func distinct(rooms []models.Room, pick func(models.Room) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, room := range rooms {
		for _, v := range pick(room) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
