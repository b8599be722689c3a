package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/queueworks/queue-booking-api/internal/httperr"
	usecase "github.com/queueworks/queue-booking-api/internal/usecase/booking"
)

// writeDomainError maps use case failures onto the HTTP envelope. Field
// validation and business rules are the caller's fault; anything else is ours.
func writeDomainError(c *gin.Context, err error) {
	if ve, ok := usecase.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "validation_failed",
			"fields":     ve.Fields,
		})
		return
	}

	if code := httperr.BusinessCode(err); code != "" {
		if strings.HasSuffix(code, "_not_found") {
			httperr.NotFound(c, code, "the requested resource does not exist")
			return
		}
		httperr.BadRequest(c, code, "the request violates a business rule")
		return
	}

	httperr.Internal(c, "internal_error", "something went wrong on our side")
}
