package booking

import (
	"context"

	"github.com/queueworks/queue-booking-api/internal/audit"
	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/models"
)

// AssignQueue hands a waiting booking the next queue number of its
// (branch, date) partition and confirms it.
type AssignQueue struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  Invalidator
	events Publisher
}

func NewAssignQueue(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache Invalidator,
	events Publisher,
) *AssignQueue {
	return &AssignQueue{
		repo:   repo,
		audit:  audit,
		cache:  cache,
		events: events,
	}
}

func (uc *AssignQueue) Execute(
	ctx context.Context,
	actorID string,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.QueueNumber != nil {
		return nil, httperr.ErrBusiness("queue_already_assigned")
	}

	if err := domain.CanAssignQueue(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	b.Status = string(domain.StatusConfirmed)
	if err := uc.repo.AssignNextQueueNumber(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateBookings(ctx)
	uc.events.PublishBookingChange("update", b)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "queue_assigned",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"queue_number": *b.QueueNumber},
	})

	return b, nil
}
