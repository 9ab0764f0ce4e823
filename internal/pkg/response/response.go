// Package response renders the one JSON envelope every handler replies
// with: {"success": true, "data": ...} on the happy path, and
// {"success": false, "error": {"code", "message"[, "details"]}} otherwise.
package response

import "github.com/gin-gonic/gin"

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// Error replies with a machine-readable code plus a human message.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"success": false, "error": errorBody{Code: code, Message: message}})
}

// ErrorWithDetails additionally attaches a payload, e.g. the blocking
// interval on a booking conflict or per-field validation tags.
func ErrorWithDetails(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, gin.H{"success": false, "error": errorBody{Code: code, Message: message, Details: details}})
}
