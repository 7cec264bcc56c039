package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"docbrief/internal/domain"
)

// ErrorResponse is the JSON body for every failed request. Details carries
// the raw upstream message for diagnostics only; Error stays actionable and
// free of internal stack traces.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// statusForKind maps each failure kind directly to an HTTP status. Caller-
// fixable conditions are 400; service-side conditions are 500.
var statusForKind = map[domain.FailureKind]int{
	domain.FailureInvalidFormat:     http.StatusBadRequest,
	domain.FailureUnsupported:       http.StatusBadRequest,
	domain.FailureTooLarge:          http.StatusBadRequest,
	domain.FailureNoExtractableText: http.StatusBadRequest,
	domain.FailureServiceRejected:   http.StatusBadRequest,
	domain.FailureServiceTransient:  http.StatusInternalServerError,
	domain.FailureUnknown:           http.StatusInternalServerError,
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// HandleError writes the response for a pipeline or collaborator error.
// Classified failures carry their own status mapping; anything else is an
// internal error.
func HandleError(c *gin.Context, err error) {
	if cf, ok := domain.AsClassified(err); ok {
		status, known := statusForKind[cf.Kind]
		if !known {
			status = http.StatusInternalServerError
		}
		if status >= 500 {
			logInternal(c, err)
		}
		c.JSON(status, ErrorResponse{Error: cf.Message, Details: cf.Detail})
		return
	}

	logInternal(c, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "an internal error occurred"})
}

func logInternal(c *gin.Context, err error) {
	requestID, _ := c.Get("request_id")
	log.Printf("[%s] internal error: %v", requestID, err)
}
