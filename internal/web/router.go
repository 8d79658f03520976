package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/meetspace/roomclient/internal/models"
)

// Router builds the gin engine with all navigable routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(accessLog(s.logger))
	router.SetHTMLTemplate(Templates())

	router.GET("/", func(c *gin.Context) { redirect(c, "/dashboard") })

	// Public
	router.GET("/login", s.showLogin)
	router.POST("/login", s.handleLogin)
	router.GET("/register", s.showRegister)
	router.POST("/register", s.handleRegister)
	router.GET("/unauthorized", s.showUnauthorized)

	// Any authenticated user
	private := router.Group("", s.RequireSession())
	{
		private.POST("/logout", s.handleLogout)
		private.GET("/dashboard", s.showDashboard)
		private.GET("/rooms/:id", s.showRoom)

		private.GET("/bookings", s.showBookings)
		private.POST("/bookings", s.createReservation)
		private.POST("/bookings/:id/edit", s.updateReservation)
		private.POST("/bookings/:id/cancel", s.cancelReservation)

		private.GET("/notifications", s.showNotifications)
		private.POST("/notifications/:id/read", s.markNotificationRead)
		private.POST("/notifications/read-all", s.markAllNotificationsRead)
		private.GET("/partials/notifications/unread-count", s.unreadCount)
	}

	// Admin only
	admin := router.Group("/admin", s.RequireSession(models.RoleAdmin))
	{
		admin.GET("", s.showAdmin)

		admin.POST("/rooms", s.adminCreateRoom)
		admin.POST("/rooms/:id", s.adminUpdateRoom)
		admin.POST("/rooms/:id/delete", s.adminDeleteRoom)

		admin.POST("/users", s.adminCreateUser)
		admin.POST("/users/:id", s.adminUpdateUser)
		admin.POST("/users/:id/delete", s.adminDeleteUser)

		admin.POST("/reservations/:id/confirm", s.adminConfirmReservation)
		admin.POST("/reservations/:id/cancel", s.adminCancelReservation)
		admin.POST("/reservations/:id/delete", s.adminDeleteReservation)

		admin.POST("/notifications/:userId", s.adminSendNotification)
	}

	return router
}

// accessLog logs each UI request with zap.
func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("ui request",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("method", method),
			zap.String("path", path),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
