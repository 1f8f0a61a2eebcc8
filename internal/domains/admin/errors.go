package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"realestate-backend/internal/shared/response"
	"realestate-backend/pkg/logger"
)

var (
	ErrMissingCredentials = errors.New("Please provide email and password")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrAccountDeactivated = errors.New("Your account has been deactivated. Contact support.")
	ErrTokenRequired      = errors.New("Token is required")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrAdminNotFound      = errors.New("Admin not found")
	ErrFieldsRequired     = errors.New("Please provide all required fields")
	ErrEmailTaken         = errors.New("Admin with this email already exists")
	ErrInvalidRole        = errors.New("Invalid role value")
	ErrWeakPassword       = errors.New("Password must be at least 6 characters")
	ErrSelfDelete         = errors.New("You cannot delete your own account")
	ErrSelfStatusChange   = errors.New("You cannot change your own status")
)

var adminErrorStatus = map[error]int{
	ErrMissingCredentials: http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrAccountDeactivated: http.StatusForbidden,
	ErrTokenRequired:      http.StatusBadRequest,
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrAdminNotFound:      http.StatusNotFound,
	ErrFieldsRequired:     http.StatusBadRequest,
	ErrEmailTaken:         http.StatusBadRequest,
	ErrInvalidRole:        http.StatusBadRequest,
	ErrWeakPassword:       http.StatusBadRequest,
	ErrSelfDelete:         http.StatusBadRequest,
	ErrSelfStatusChange:   http.StatusBadRequest,
}

// HandleAdminError maps domain errors to HTTP responses. Returns true
// when err was non-nil and a response has been written.
func HandleAdminError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, status := range adminErrorStatus {
		if errors.Is(err, sentinel) {
			response.Error(c, status, sentinel.Error())
			return true
		}
	}

	logger.Error("admin request failed", err)
	response.ServerError(c, err)
	return true
}
