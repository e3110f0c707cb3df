package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yamui/generator-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError maps a core taxonomy error to its transport status; errors
// outside the taxonomy surface as 500 internal.
func RespondAPIError(c *gin.Context, err error) {
	code := apierr.CodeOf(err)
	if code == "" {
		RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	RespondError(c, apierr.StatusOf(err), code, err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
