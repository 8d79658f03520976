// Package response is the JSON envelope for the client's small XHR surface
// (navbar badge polling). Full pages are rendered as HTML, not JSON.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the standard JSON envelope.
type Body struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK sends a 200 JSON response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Unauthorized sends 401 with an error message.
func Unauthorized(c *gin.Context, err string) {
	c.JSON(http.StatusUnauthorized, Body{Success: false, Error: err})
}

// Internal sends 500 with an error message.
func Internal(c *gin.Context, err string) {
	c.JSON(http.StatusInternalServerError, Body{Success: false, Error: err})
}
