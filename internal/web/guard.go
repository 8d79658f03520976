package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meetspace/roomclient/internal/models"
	"github.com/meetspace/roomclient/pkg/response"
)

// Decision is the outcome of evaluating a navigation attempt against the
// current session.
type Decision int

const (
	// DecisionAllow permits rendering the guarded destination.
	DecisionAllow Decision = iota
	// DecisionWait renders a neutral waiting page: the session is not yet
	// initialized, so neither allow nor redirect would be correct.
	DecisionWait
	// DecisionLogin redirects to the login destination, carrying the
	// originally intended path for the post-login return trip.
	DecisionLogin
	// DecisionUnauthorized redirects to the unauthorized destination: the
	// user is authenticated but lacks a required role.
	DecisionUnauthorized
)

// Decide evaluates one navigation attempt. It is pure and re-evaluated on
// every attempt; decisions are never cached, since the session can change
// between navigations.
func Decide(ready, authenticated bool, role models.Role, required []models.Role) Decision {
	if !ready {
		return DecisionWait
	}
	if !authenticated {
		return DecisionLogin
	}
	if len(required) == 0 {
		return DecisionAllow
	}
	for _, r := range required {
		if role == r {
			return DecisionAllow
		}
	}
	return DecisionUnauthorized
}

// RequireSession applies Decide as gin middleware. Routes declaring roles
// admit only those roles; routes declaring none admit any authenticated
// user. XHR requests get a 401 JSON body instead of a redirect so the
// polling script can stop quietly.
func (s *Server) RequireSession(required ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, authenticated := s.sessions.Current()
		switch Decide(s.sessions.Ready(), authenticated, user.Role, required) {
		case DecisionWait:
			c.HTML(http.StatusOK, "loading.tmpl", gin.H{})
			c.Abort()
		case DecisionLogin:
			if wantsJSON(c) {
				response.Unauthorized(c, "authentication required")
			} else {
				c.Redirect(http.StatusFound, loginPath(returnTarget(c)))
			}
			c.Abort()
		case DecisionUnauthorized:
			c.Redirect(http.StatusFound, "/unauthorized")
			c.Abort()
		default:
			c.Next()
		}
	}
}

func loginPath(from string) string {
	if from == "" || from == "/" {
		return "/login"
	}
	return "/login?from=" + url.QueryEscape(from)
}

// returnTarget picks the path to come back to after re-login. POST action
// routes are not navigable with GET, so for them the referring page is used
// instead of the request path; with no usable referrer the login page links
// nowhere and the user lands on the dashboard.
func returnTarget(c *gin.Context) string {
	if c.Request.Method == http.MethodGet {
		return c.Request.URL.Path
	}
	if ref, err := url.Parse(c.Request.Referer()); err == nil && ref.Path != "" {
		return ref.Path
	}
	return ""
}

// safeReturnPath validates a post-login return target: it must be a local
// absolute path, never a scheme-relative or external URL.
func safeReturnPath(from string) string {
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") {
		return "/dashboard"
	}
	return from
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
