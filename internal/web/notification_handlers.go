package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meetspace/roomclient/internal/models"
	"github.com/meetspace/roomclient/pkg/response"
)

func (s *Server) showNotifications(c *gin.Context) {
	list, err := s.notifications.ListOwn(c.Request.Context())
	if err != nil {
		s.fail(c, err, "/dashboard")
		return
	}
	s.render(c, http.StatusOK, "notifications.tmpl", gin.H{
		"Notifications": list,
		"Unread":        models.CountUnread(list),
	})
}

func (s *Server) markNotificationRead(c *gin.Context) {
	if err := s.notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err, "/notifications")
		return
	}
	redirect(c, "/notifications")
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
	if err := s.notifications.MarkAllRead(c.Request.Context()); err != nil {
		s.fail(c, err, "/notifications")
		return
	}
	redirect(c, "/notifications")
}

// unreadCount backs the navbar badge poller.
func (s *Server) unreadCount(c *gin.Context) {
	list, err := s.notifications.ListOwn(c.Request.Context())
	if err != nil {
		response.Internal(c, "failed to load notifications")
		return
	}
	response.OK(c, gin.H{"unread": models.CountUnread(list)})
}
