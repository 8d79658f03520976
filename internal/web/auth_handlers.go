package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meetspace/roomclient/internal/booking"
	"github.com/meetspace/roomclient/internal/models"
)

func (s *Server) showLogin(c *gin.Context) {
	if s.sessions.IsAuthenticated() {
		redirect(c, "/dashboard")
		return
	}
	s.render(c, http.StatusOK, "login.tmpl", gin.H{
		"From":     c.Query("from"),
		"Username": "",
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	creds := booking.Credentials{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}
	if err := s.sessions.Login(c.Request.Context(), creds); err != nil {
		s.failForm(c, err, "login.tmpl", gin.H{
			"Username": creds.Username,
			"From":     c.PostForm("from"),
		})
		return
	}
	if user, ok := s.sessions.Current(); ok {
		setFlash(c, flashInfo, "Welcome back, "+user.FullName+"!")
	}
	redirect(c, safeReturnPath(c.PostForm("from")))
}

func (s *Server) showRegister(c *gin.Context) {
	if s.sessions.IsAuthenticated() {
		redirect(c, "/dashboard")
		return
	}
	s.render(c, http.StatusOK, "register.tmpl", gin.H{
		"Email":    "",
		"FullName": "",
	})
}

func (s *Server) handleRegister(c *gin.Context) {
	data := booking.RegisterData{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		FullName: c.PostForm("fullName"),
		Role:     models.RoleUser,
	}
	if err := s.sessions.Register(c.Request.Context(), data); err != nil {
		s.failForm(c, err, "register.tmpl", gin.H{
			"Email":    data.Email,
			"FullName": data.FullName,
		})
		return
	}
	if user, ok := s.sessions.Current(); ok {
		setFlash(c, flashInfo, "Welcome, "+user.FullName+"!")
	}
	redirect(c, "/dashboard")
}

func (s *Server) handleLogout(c *gin.Context) {
	s.sessions.Logout(c.Request.Context())
	setFlash(c, flashInfo, "You have been logged out.")
	redirect(c, "/login")
}

func (s *Server) showUnauthorized(c *gin.Context) {
	s.render(c, http.StatusOK, "unauthorized.tmpl", gin.H{})
}
