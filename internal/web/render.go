package web

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"join": strings.Join,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
}

const (
	flashCookie = "flash"
	flashInfo   = "info"
	flashError  = "error"
)

// Flash is a one-shot message surfaced on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// setFlash stores a transient notification in a cookie consumed by the
// next render.
func setFlash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(kind+"|"+message), 60, "/", "", false, true)
}

// popFlash reads and clears the pending flash, if any.
func popFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(decoded, "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}

// render draws a page template with the shared chrome data (current user,
// pending flash) merged in.
func (s *Server) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := s.sessions.Current(); ok {
		data["User"] = user
	}
	if _, ok := data["Flash"]; !ok {
		if flash := popFlash(c); flash != nil {
			data["Flash"] = flash
		}
	}
	c.HTML(status, tmpl, data)
}

// redirect is a small wrapper so handlers read uniformly.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
