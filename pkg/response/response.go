package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campusops/coe-api/pkg/errors"
)

// The wire contract is a flat JSON object. Mutating endpoints respond with
// {"success": bool, "message": string, ...}; list endpoints respond with a
// bare JSON array.

// JSON sends an arbitrary payload with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK sends a success payload merged over {"success": true}.
func OK(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Message sends {"success": true, "message": msg}.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// Fail sends {"success": false, "message": msg} with HTTP 200, the shape
// used for validation and lookup failures.
func Fail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": msg})
}

// Error maps a typed error onto the flat contract using its HTTP status.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"success": false, "message": appErr.Message})
}

// List sends a bare JSON array, substituting an empty slice for nil so the
// client never sees "null".
func List(c *gin.Context, items interface{}) {
	if items == nil {
		items = []interface{}{}
	}
	c.JSON(http.StatusOK, items)
}

// EmptyList is the silent fallback used by list endpoints when the backing
// store is unavailable.
func EmptyList(c *gin.Context) {
	c.JSON(http.StatusOK, []interface{}{})
}
