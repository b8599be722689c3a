package booking

import (
	"context"
	"time"

	"github.com/queueworks/queue-booking-api/internal/audit"
	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/models"
)

// CompleteCurrent finishes the booking being served without calling the
// next one.
type CompleteCurrent struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  Invalidator
	events Publisher
}

func NewCompleteCurrent(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache Invalidator,
	events Publisher,
) *CompleteCurrent {
	return &CompleteCurrent{
		repo:   repo,
		audit:  audit,
		cache:  cache,
		events: events,
	}
}

func (uc *CompleteCurrent) Execute(
	ctx context.Context,
	actorID string,
	branchID string,
	date string,
) (*models.Booking, error) {

	queue, err := uc.repo.ListQueue(ctx, branchID, date)
	if err != nil {
		return nil, err
	}

	cur := domain.NowServing(queue)
	if cur == nil {
		return nil, httperr.ErrBusiness("no_booking_in_progress")
	}

	if err := domain.Complete(cur, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBooking(ctx, cur); err != nil {
		return nil, err
	}

	uc.cache.InvalidateBookings(ctx)
	uc.events.PublishBookingChange("update", cur)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &cur.ID,
	})

	return cur, nil
}
