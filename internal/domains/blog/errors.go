package blog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"realestate-backend/internal/shared/response"
	"realestate-backend/pkg/logger"
)

var (
	ErrBlogNotFound   = errors.New("Blog not found")
	ErrFieldsRequired = errors.New("All fields are required")
	ErrInvalidDate    = errors.New("Invalid date format")
	ErrAlreadyOnHome  = errors.New("This blog is already on the homepage")
	ErrNotOnHome      = errors.New("This blog is not on the homepage")
	ErrHomePageLimit  = errors.New("Homepage limit reached. Maximum 3 blogs allowed on homepage. Please remove one first.")
	ErrCategoryNeeded = errors.New("Category is required")
	ErrQueryTooShort  = errors.New("Search query must be at least 2 characters")
)

var blogErrorStatus = map[error]int{
	ErrBlogNotFound:   http.StatusNotFound,
	ErrFieldsRequired: http.StatusBadRequest,
	ErrInvalidDate:    http.StatusBadRequest,
	ErrAlreadyOnHome:  http.StatusBadRequest,
	ErrNotOnHome:      http.StatusBadRequest,
	ErrHomePageLimit:  http.StatusBadRequest,
	ErrCategoryNeeded: http.StatusBadRequest,
	ErrQueryTooShort:  http.StatusBadRequest,
}

// HandleBlogError maps domain errors to HTTP responses. Returns true when
// err was non-nil and a response has been written.
func HandleBlogError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, status := range blogErrorStatus {
		if errors.Is(err, sentinel) {
			response.Error(c, status, sentinel.Error())
			return true
		}
	}

	logger.Error("blog request failed", err)
	response.ServerError(c, err)
	return true
}
