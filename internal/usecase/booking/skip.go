package booking

import (
	"context"
	"time"

	"github.com/queueworks/queue-booking-api/internal/audit"
	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
)

// Skip cancels the booking being served and immediately calls the next one.
type Skip struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	cache    Invalidator
	events   Publisher
	callNext *CallNext
}

func NewSkip(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache Invalidator,
	events Publisher,
	callNext *CallNext,
) *Skip {
	return &Skip{
		repo:     repo,
		audit:    audit,
		cache:    cache,
		events:   events,
		callNext: callNext,
	}
}

func (uc *Skip) Execute(
	ctx context.Context,
	actorID string,
	branchID string,
	date string,
) (*CallNextResult, error) {

	queue, err := uc.repo.ListQueue(ctx, branchID, date)
	if err != nil {
		return nil, err
	}

	cur := domain.NowServing(queue)
	if cur == nil {
		return nil, httperr.ErrBusiness("no_booking_in_progress")
	}

	if err := domain.Cancel(cur, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBooking(ctx, cur); err != nil {
		return nil, err
	}

	uc.cache.InvalidateBookings(ctx)
	uc.events.PublishBookingChange("update", cur)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "booking_skipped",
		Entity:   "booking",
		EntityID: &cur.ID,
	})

	return uc.callNext.Execute(ctx, actorID, branchID, date)
}
