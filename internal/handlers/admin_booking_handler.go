package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/httpresp"
	"github.com/queueworks/queue-booking-api/internal/middleware"
	"github.com/queueworks/queue-booking-api/internal/reporting"
	usecase "github.com/queueworks/queue-booking-api/internal/usecase/booking"
)

type AdminBookingHandler struct {
	repo     domain.Repository
	deleteUC *usecase.DeleteBooking
}

func NewAdminBookingHandler(repo domain.Repository, deleteUC *usecase.DeleteBooking) *AdminBookingHandler {
	return &AdminBookingHandler{repo: repo, deleteUC: deleteUC}
}

// List returns every booking, narrowed in memory by status and a customer
// name/email search. The result sets are small; filtering stays out of SQL
// so both filters share one code path with the analytics views.
func (h *AdminBookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.ListBookings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "booking_list_failed", "could not load bookings")
		return
	}

	bookings = reporting.FilterStatus(bookings, c.Query("status"))
	bookings = reporting.Search(bookings, c.Query("search"))

	httpresp.List(c, bookings)
}

func (h *AdminBookingHandler) Delete(c *gin.Context) {
	actorID := c.GetString(middleware.ContextUserID)

	if err := h.deleteUC.Execute(c.Request.Context(), actorID, c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
