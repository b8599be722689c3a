package booking

import (
	"context"
	"time"

	"github.com/queueworks/queue-booking-api/internal/audit"
	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/models"
)

// CancelOwn lets a customer back out of their own booking before service
// starts. Ownership failures report not-found so booking ids cannot be
// probed.
type CancelOwn struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  Invalidator
	events Publisher
}

func NewCancelOwn(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache Invalidator,
	events Publisher,
) *CancelOwn {
	return &CancelOwn{
		repo:   repo,
		audit:  audit,
		cache:  cache,
		events: events,
	}
}

func (uc *CancelOwn) Execute(
	ctx context.Context,
	userID string,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil || b.UserID != userID {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	status := domain.Status(b.Status)
	if status != domain.StatusPending && status != domain.StatusConfirmed {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if err := domain.Cancel(b, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateBookings(ctx)
	uc.events.PublishBookingChange("update", b)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
