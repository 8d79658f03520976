package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/meetspace/roomclient/internal/apperr"
	"github.com/meetspace/roomclient/internal/availability"
)

// criteriaFromQuery reads the dashboard filter controls. Absent controls
// leave their criterion zero, which filters nothing.
func criteriaFromQuery(c *gin.Context) availability.Criteria {
	minCapacity, _ := strconv.Atoi(c.Query("capacity"))
	return availability.Criteria{
		SearchText:        c.Query("q"),
		Location:          c.Query("location"),
		MinCapacity:       minCapacity,
		Date:              c.Query("date"),
		RequiredAmenities: c.QueryArray("amenity"),
	}
}

func (s *Server) showDashboard(c *gin.Context) {
	criteria := criteriaFromQuery(c)
	rooms, err := s.rooms.List(c.Request.Context())
	if err != nil {
		if apperr.IsAuthentication(err) {
			s.fail(c, err, "/dashboard")
			return
		}
		// Render the page shell with the error banner; redirecting away
		// would leave the user nowhere to retry from.
		s.render(c, http.StatusOK, "dashboard.tmpl", gin.H{
			"Rooms":        nil,
			"Criteria":     criteria,
			"Locations":    []string{},
			"AllAmenities": []string{},
			"Error":        apperr.MessageOf(err),
		})
		return
	}

	s.render(c, http.StatusOK, "dashboard.tmpl", gin.H{
		"Rooms":        availability.FilterRooms(rooms, criteria),
		"Criteria":     criteria,
		"Locations":    availability.Locations(rooms),
		"AllAmenities": availability.Amenities(rooms),
	})
}

func (s *Server) showRoom(c *gin.Context) {
	room, err := s.rooms.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err, "/dashboard")
		return
	}

	// Preselect the requested date's slots for the booking form.
	date := c.Query("date")
	var slots any
	if date != "" {
		if day, ok := room.AvailabilityOn(date); ok {
			slots = day.TimeSlots
		}
	}
	s.render(c, http.StatusOK, "room_detail.tmpl", gin.H{
		"Room":  room,
		"Date":  date,
		"Slots": slots,
	})
}
