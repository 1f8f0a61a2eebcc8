package lead

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"realestate-backend/internal/shared/response"
	"realestate-backend/pkg/logger"
)

var (
	ErrContactFieldsRequired  = errors.New("All fields are required")
	ErrContactNotFound        = errors.New("Contact not found")
	ErrCallbackFieldsRequired = errors.New("Please provide all required fields")
	ErrPropertyNotFound       = errors.New("Property not found")
	ErrCallbackNotFound       = errors.New("Callback request not found")
	ErrEmailRequired          = errors.New("Email is required")
	ErrInvalidEmail           = errors.New("Please provide a valid email address")
	ErrSubscriberNotFound     = errors.New("Email not found in our subscription list")
	ErrSubscriberIDNotFound   = errors.New("Subscriber not found")
	ErrInvalidStatus          = errors.New("Invalid status value")
	ErrInvalidPreferredTime   = errors.New("Invalid preferred time value")
	ErrMessageTooLong         = errors.New("Message cannot exceed 500 characters")
)

var leadErrorStatus = map[error]int{
	ErrContactFieldsRequired:  http.StatusBadRequest,
	ErrContactNotFound:        http.StatusNotFound,
	ErrCallbackFieldsRequired: http.StatusBadRequest,
	ErrPropertyNotFound:       http.StatusNotFound,
	ErrCallbackNotFound:       http.StatusNotFound,
	ErrEmailRequired:          http.StatusBadRequest,
	ErrInvalidEmail:           http.StatusBadRequest,
	ErrSubscriberNotFound:     http.StatusNotFound,
	ErrSubscriberIDNotFound:   http.StatusNotFound,
	ErrInvalidStatus:          http.StatusBadRequest,
	ErrInvalidPreferredTime:   http.StatusBadRequest,
	ErrMessageTooLong:         http.StatusBadRequest,
}

// HandleLeadError maps domain errors to HTTP responses. Returns true when
// err was non-nil and a response has been written.
func HandleLeadError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, status := range leadErrorStatus {
		if errors.Is(err, sentinel) {
			response.Error(c, status, sentinel.Error())
			return true
		}
	}

	logger.Error("lead request failed", err)
	response.ServerError(c, err)
	return true
}
