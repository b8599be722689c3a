package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/httpresp"
	"github.com/queueworks/queue-booking-api/internal/reporting"
)

type AnalyticsHandler struct {
	repo domain.Repository
}

func NewAnalyticsHandler(repo domain.Repository) *AnalyticsHandler {
	return &AnalyticsHandler{repo: repo}
}

// Summary aggregates bookings over a date range, defaulting to the last
// 30 days.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	to := c.Query("to")
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}
	from := c.Query("from")
	if from == "" {
		from = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", from); err != nil {
		httperr.BadRequest(c, "invalid_from_date", "from must be YYYY-MM-DD")
		return
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		httperr.BadRequest(c, "invalid_to_date", "to must be YYYY-MM-DD")
		return
	}

	bookings, err := h.repo.ListBookingsForPeriod(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "analytics_load_failed", "could not load bookings")
		return
	}

	completed := reporting.FilterStatus(bookings, "completed")

	httpresp.OK(c, gin.H{
		"from":            from,
		"to":              to,
		"total_bookings":  len(bookings),
		"completed_count": reporting.CountStatus(bookings, "completed"),
		"cancelled_count": reporting.CountStatus(bookings, "cancelled"),
		"total_revenue":   reporting.TotalRevenue(completed),
		"by_payment":      reporting.RevenueByPaymentMethod(completed),
		"by_service":      reporting.CountByService(bookings),
		"by_branch":       reporting.CountByBranch(bookings),
		"revenue_by_date": reporting.RevenueByDate(completed),
	})
}
