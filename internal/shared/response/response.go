package response

import (
	"net/http"

	"realestate-backend/internal/shared/pagination"

	"github.com/gin-gonic/gin"
)

// List writes a paginated collection response. The collection is keyed by
// its resource name ("properties", "blogs", ...).
func List(c *gin.Context, key string, items interface{}, meta *pagination.Meta) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		key:          items,
		"pagination": meta,
	})
}

// OK writes a success response with a message and optional named payloads.
func OK(c *gin.Context, statusCode int, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Data writes a success response carrying named payloads without a message.
func Data(c *gin.Context, statusCode int, payload gin.H) {
	OK(c, statusCode, "", payload)
}

// Error responses
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ServerError surfaces the underlying error message alongside the generic
// server error marker.
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Server Error",
		"error":   err.Error(),
	})
}
