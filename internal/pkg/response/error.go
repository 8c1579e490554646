package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/azurhotel/booking-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response.
// AppError values (including wrapped ones) carry their own status code and
// user-facing message; anything else becomes a 500 with a generic message.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
