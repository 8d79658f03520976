package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meetspace/roomclient/internal/booking"
	"github.com/meetspace/roomclient/internal/models"
)

// bookingView is a reservation plus the control gating computed against the
// current time. Gating is presentation only; the server enforces ownership
// and state rules.
type bookingView struct {
	models.Reservation
	CanEdit   bool
	CanCancel bool
}

func (s *Server) showBookings(c *gin.Context) {
	list, err := s.reservations.ListOwn(c.Request.Context())
	if err != nil {
		s.fail(c, err, "/dashboard")
		return
	}

	now := time.Now()
	views := make([]bookingView, 0, len(list))
	for _, r := range list {
		views = append(views, bookingView{
			Reservation: r,
			CanEdit:     booking.CanEdit(r, now),
			CanCancel:   booking.CanCancel(r, now),
		})
	}
	s.render(c, http.StatusOK, "bookings.tmpl", gin.H{"Bookings": views})
}

func reservationForm(c *gin.Context) models.CreateReservationData {
	attendees, _ := strconv.Atoi(c.PostForm("attendees"))
	return models.CreateReservationData{
		RoomID:    c.PostForm("roomId"),
		Date:      c.PostForm("date"),
		StartTime: c.PostForm("startTime"),
		EndTime:   c.PostForm("endTime"),
		Purpose:   c.PostForm("purpose"),
		Attendees: attendees,
	}
}

func (s *Server) createReservation(c *gin.Context) {
	data := reservationForm(c)
	if err := booking.ValidateReservation(data); err != nil {
		s.fail(c, err, "/rooms/"+data.RoomID+"?date="+data.Date)
		return
	}
	if _, err := s.reservations.Create(c.Request.Context(), data); err != nil {
		s.fail(c, err, "/rooms/"+data.RoomID+"?date="+data.Date)
		return
	}
	setFlash(c, flashInfo, "Reservation created.")
	redirect(c, "/bookings")
}

func (s *Server) updateReservation(c *gin.Context) {
	data := reservationForm(c)
	if err := booking.ValidateReservation(data); err != nil {
		s.fail(c, err, "/bookings")
		return
	}
	update := models.UpdateReservationData{
		Date:      data.Date,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Purpose:   data.Purpose,
		Attendees: data.Attendees,
	}
	if _, err := s.reservations.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		s.fail(c, err, "/bookings")
		return
	}
	setFlash(c, flashInfo, "Reservation updated.")
	redirect(c, "/bookings")
}

func (s *Server) cancelReservation(c *gin.Context) {
	id := c.Param("id")
	err := s.dedupe("reservation:cancel:"+id, func() error {
		_, err := s.reservations.Update(c.Request.Context(), id, models.UpdateReservationData{
			Status: models.StatusCancelled,
		})
		return err
	})
	if err != nil {
		s.fail(c, err, "/bookings")
		return
	}
	setFlash(c, flashInfo, "Reservation cancelled.")
	redirect(c, "/bookings")
}
