package property

import (
	"errors"
	"fmt"
	"net/http"

	"realestate-backend/internal/shared/response"
	"realestate-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	ErrPropertyNotFound = errors.New("Property not found")
	ErrNoHomeProperties = errors.New("No properties found for home page")
	ErrImageRequired    = errors.New("At least one image is required")
	ErrImageNotFound    = errors.New("Image not found in this property")
	ErrLastImage        = errors.New("Cannot delete the last image. Property must have at least one image.")
	ErrAlreadyOnHome    = errors.New("Property is already on the homepage")
	ErrNotOnHome        = errors.New("Property is not on the homepage")
	ErrHomePageLimit    = errors.New("Homepage limit reached. Maximum 8 properties allowed. Please remove a property first.")
)

// ValidationError names the filter or body field that failed to parse.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %q", e.Field)
}

var propertyErrorStatus = map[error]int{
	ErrPropertyNotFound: http.StatusNotFound,
	ErrNoHomeProperties: http.StatusNotFound,
	ErrImageRequired:    http.StatusBadRequest,
	ErrImageNotFound:    http.StatusNotFound,
	ErrLastImage:        http.StatusBadRequest,
	ErrAlreadyOnHome:    http.StatusBadRequest,
	ErrNotOnHome:        http.StatusBadRequest,
	ErrHomePageLimit:    http.StatusBadRequest,
}

// HandlePropertyError maps domain errors to HTTP responses. Returns true
// when err was non-nil and a response has been written.
func HandlePropertyError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		response.BadRequest(c, err.Error())
		return true
	}

	for sentinel, status := range propertyErrorStatus {
		if errors.Is(err, sentinel) {
			response.Error(c, status, sentinel.Error())
			return true
		}
	}

	logger.Error("property request failed", err)
	response.ServerError(c, err)
	return true
}
