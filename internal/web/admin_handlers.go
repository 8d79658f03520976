package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meetspace/roomclient/internal/booking"
	"github.com/meetspace/roomclient/internal/models"
)

// showAdmin renders the management view with all three resource lists.
// Each list is fetched fresh; there is no client-side cache to reconcile.
func (s *Server) showAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		s.fail(c, err, "/dashboard")
		return
	}
	reservations, err := s.reservations.ListAll(ctx)
	if err != nil {
		s.fail(c, err, "/dashboard")
		return
	}
	users, err := s.users.List(ctx)
	if err != nil {
		s.fail(c, err, "/dashboard")
		return
	}

	s.render(c, http.StatusOK, "admin.tmpl", gin.H{
		"Rooms":        rooms,
		"Reservations": reservations,
		"Users":        users,
		"Tab":          c.Query("tab"),
	})
}

func roomForm(c *gin.Context) models.RoomData {
	capacity, _ := strconv.Atoi(c.PostForm("capacity"))
	return models.RoomData{
		Name:        c.PostForm("name"),
		Capacity:    capacity,
		Location:    c.PostForm("location"),
		Description: c.PostForm("description"),
		Amenities:   splitList(c.PostForm("amenities")),
		Images:      splitList(c.PostForm("images")),
	}
}

// splitList parses a comma-separated form field into a clean slice.
func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *Server) adminCreateRoom(c *gin.Context) {
	data := roomForm(c)
	if err := booking.ValidateRoom(data); err != nil {
		s.fail(c, err, "/admin?tab=rooms")
		return
	}
	if _, err := s.rooms.Create(c.Request.Context(), data); err != nil {
		s.fail(c, err, "/admin?tab=rooms")
		return
	}
	setFlash(c, flashInfo, "Room created.")
	redirect(c, "/admin?tab=rooms")
}

func (s *Server) adminUpdateRoom(c *gin.Context) {
	data := roomForm(c)
	if err := booking.ValidateRoom(data); err != nil {
		s.fail(c, err, "/admin?tab=rooms")
		return
	}
	if _, err := s.rooms.Update(c.Request.Context(), c.Param("id"), data); err != nil {
		s.fail(c, err, "/admin?tab=rooms")
		return
	}
	setFlash(c, flashInfo, "Room updated.")
	redirect(c, "/admin?tab=rooms")
}

func (s *Server) adminDeleteRoom(c *gin.Context) {
	id := c.Param("id")
	err := s.dedupe("room:delete:"+id, func() error {
		return s.rooms.Delete(c.Request.Context(), id)
	})
	if err != nil {
		s.fail(c, err, "/admin?tab=rooms")
		return
	}
	setFlash(c, flashInfo, "Room deleted.")
	redirect(c, "/admin?tab=rooms")
}

func (s *Server) adminCreateUser(c *gin.Context) {
	data := models.CreateUserData{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		FullName: c.PostForm("fullName"),
		Role:     models.Role(c.PostForm("role")),
	}
	if err := booking.ValidateUser(data); err != nil {
		s.fail(c, err, "/admin?tab=users")
		return
	}
	if _, err := s.users.Create(c.Request.Context(), data); err != nil {
		s.fail(c, err, "/admin?tab=users")
		return
	}
	setFlash(c, flashInfo, "User created.")
	redirect(c, "/admin?tab=users")
}

func (s *Server) adminUpdateUser(c *gin.Context) {
	data := models.UpdateUserData{
		Email:    c.PostForm("email"),
		FullName: c.PostForm("fullName"),
		Role:     models.Role(c.PostForm("role")),
	}
	if _, err := s.users.Update(c.Request.Context(), c.Param("id"), data); err != nil {
		s.fail(c, err, "/admin?tab=users")
		return
	}
	setFlash(c, flashInfo, "User updated.")
	redirect(c, "/admin?tab=users")
}

func (s *Server) adminDeleteUser(c *gin.Context) {
	id := c.Param("id")
	err := s.dedupe("user:delete:"+id, func() error {
		return s.users.Delete(c.Request.Context(), id)
	})
	if err != nil {
		s.fail(c, err, "/admin?tab=users")
		return
	}
	setFlash(c, flashInfo, "User deleted.")
	redirect(c, "/admin?tab=users")
}

func (s *Server) adminConfirmReservation(c *gin.Context) {
	s.adminTransitionReservation(c, models.StatusConfirmed, "Reservation confirmed.")
}

func (s *Server) adminCancelReservation(c *gin.Context) {
	s.adminTransitionReservation(c, models.StatusCancelled, "Reservation cancelled.")
}

func (s *Server) adminTransitionReservation(c *gin.Context, status models.ReservationStatus, msg string) {
	id := c.Param("id")
	err := s.dedupe("reservation:"+string(status)+":"+id, func() error {
		_, err := s.reservations.Update(c.Request.Context(), id, models.UpdateReservationData{Status: status})
		return err
	})
	if err != nil {
		s.fail(c, err, "/admin?tab=reservations")
		return
	}
	setFlash(c, flashInfo, msg)
	redirect(c, "/admin?tab=reservations")
}

func (s *Server) adminDeleteReservation(c *gin.Context) {
	id := c.Param("id")
	err := s.dedupe("reservation:delete:"+id, func() error {
		return s.reservations.Delete(c.Request.Context(), id)
	})
	if err != nil {
		s.fail(c, err, "/admin?tab=reservations")
		return
	}
	setFlash(c, flashInfo, "Reservation deleted.")
	redirect(c, "/admin?tab=reservations")
}

func (s *Server) adminSendNotification(c *gin.Context) {
	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		setFlash(c, flashError, "Message is required.")
		redirect(c, "/admin?tab=users")
		return
	}
	if _, err := s.notifications.Send(c.Request.Context(), c.Param("userId"), message); err != nil {
		s.fail(c, err, "/admin?tab=users")
		return
	}
	setFlash(c, flashInfo, "Notification sent.")
	redirect(c, "/admin?tab=users")
}
