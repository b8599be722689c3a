package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/queueworks/queue-booking-api/internal/cache"
	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/httpresp"
	"github.com/queueworks/queue-booking-api/internal/middleware"
	usecase "github.com/queueworks/queue-booking-api/internal/usecase/booking"
)

type BookingHandler struct {
	repo     domain.Repository
	listings *cache.ListingCache
	createUC *usecase.CreateBooking
	cancelUC *usecase.CancelOwn
}

func NewBookingHandler(
	repo domain.Repository,
	listings *cache.ListingCache,
	createUC *usecase.CreateBooking,
	cancelUC *usecase.CancelOwn,
) *BookingHandler {
	return &BookingHandler{
		repo:     repo,
		listings: listings,
		createUC: createUC,
		cancelUC: cancelUC,
	}
}

type CreateBookingRequest struct {
	BranchID      string `json:"branch_id"`
	ServiceCode   string `json:"service_code"`
	Quantity      int    `json:"quantity"`
	BookingDate   string `json:"booking_date"`
	BookingTime   string `json:"booking_time"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), usecase.CreateBookingInput{
		UserID:        c.GetString(middleware.ContextUserID),
		BranchID:      req.BranchID,
		ServiceCode:   req.ServiceCode,
		Quantity:      req.Quantity,
		Date:          req.BookingDate,
		TimeSlot:      req.BookingTime,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ListMine serves the customer's own bookings through the listing cache.
func (h *BookingHandler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString(middleware.ContextUserID)
	key := cache.UserBookingsKey(userID)

	if bookings, ok := h.listings.GetBookings(ctx, key); ok {
		httpresp.List(c, bookings)
		return
	}

	bookings, err := h.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		httperr.Internal(c, "booking_list_failed", "could not load bookings")
		return
	}

	h.listings.SetBookings(ctx, key, bookings)
	httpresp.List(c, bookings)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	b, err := h.cancelUC.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// QueueStatus is the customer's view of a branch queue: the number being
// served and how many are waiting.
func (h *BookingHandler) QueueStatus(c *gin.Context) {
	branchID := c.Query("branch_id")
	if branchID == "" {
		httperr.BadRequest(c, "branch_id_required", "branch_id query parameter is required")
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	partition, err := h.repo.ListQueue(c.Request.Context(), branchID, date)
	if err != nil {
		httperr.Internal(c, "queue_load_failed", "could not load the queue")
		return
	}

	var nowServing *int
	if current := domain.NowServing(partition); current != nil {
		nowServing = current.QueueNumber
	}

	httpresp.OK(c, gin.H{
		"branch_id":     branchID,
		"date":          date,
		"now_serving":   nowServing,
		"waiting_count": len(domain.Waiting(partition)),
	})
}
