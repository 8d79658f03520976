// Package web serves the navigable routes of the room-booking client and
// guards them with the session-based route guard.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/meetspace/roomclient/internal/apperr"
	"github.com/meetspace/roomclient/internal/booking"
	"github.com/meetspace/roomclient/internal/session"
)

// Server holds the handlers for every route, the session manager and the
// domain clients they call.
type Server struct {
	sessions      *session.Manager
	rooms         *booking.RoomClient
	reservations  *booking.ReservationClient
	users         *booking.UserClient
	notifications *booking.NotificationClient
	logger        *zap.Logger

	// destructive collapses double-submitted delete/cancel requests for the
	// same entity into a single backend call.
	destructive singleflight.Group
}

// NewServer creates the web server over the given session manager and
// domain clients.
func NewServer(
	sessions *session.Manager,
	rooms *booking.RoomClient,
	reservations *booking.ReservationClient,
	users *booking.UserClient,
	notifications *booking.NotificationClient,
	logger *zap.Logger,
) *Server {
	return &Server{
		sessions:      sessions,
		rooms:         rooms,
		reservations:  reservations,
		users:         users,
		notifications: notifications,
		logger:        logger,
	}
}

// dedupe runs fn once per concurrent burst of identical destructive actions.
// A second click on the same cancel/delete button while the first request is
// in flight shares its result instead of issuing another request.
func (s *Server) dedupe(key string, fn func() error) error {
	_, err, _ := s.destructive.Do(key, func() (interface{}, error) {
		return nil, fn()
	})
	return err
}

// fail handles a backend error uniformly: a 401 sends the user to login
// (the gateway has already torn the session down); everything else becomes
// a flash message on the fallback route.
func (s *Server) fail(c *gin.Context, err error, fallback string) {
	if apperr.IsAuthentication(err) {
		c.Redirect(http.StatusFound, loginPath(returnTarget(c)))
		return
	}
	setFlash(c, flashError, apperr.MessageOf(err))
	c.Redirect(http.StatusFound, fallback)
}

// failForm re-renders a form page with the error message instead of
// redirecting, so the user's input survives the round trip.
func (s *Server) failForm(c *gin.Context, err error, tmpl string, data gin.H) {
	data["Error"] = apperr.MessageOf(err)
	s.render(c, http.StatusOK, tmpl, data)
}
