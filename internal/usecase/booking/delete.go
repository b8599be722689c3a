package booking

import (
	"context"

	"github.com/queueworks/queue-booking-api/internal/audit"
	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
)

// DeleteBooking is the admin hard delete. Irreversible.
type DeleteBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  Invalidator
	events Publisher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache Invalidator,
	events Publisher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:   repo,
		audit:  audit,
		cache:  cache,
		events: events,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actorID string,
	bookingID string,
) error {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.cache.InvalidateBookings(ctx)
	uc.events.PublishBookingChange("delete", b)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
