package booking

import (
	"context"
	"time"

	"github.com/queueworks/queue-booking-api/internal/audit"
	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/models"
)

type CallNextResult struct {
	Completed *models.Booking `json:"completed,omitempty"`
	Started   *models.Booking `json:"started,omitempty"`
}

// CallNext finishes whoever is being served and promotes the earliest
// waiting booking of the partition. The two writes are separate targeted
// updates: if the promotion fails after the completion went through, the
// partition is simply left with no one in progress, and calling again is
// safe.
type CallNext struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  Invalidator
	events Publisher
}

func NewCallNext(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache Invalidator,
	events Publisher,
) *CallNext {
	return &CallNext{
		repo:   repo,
		audit:  audit,
		cache:  cache,
		events: events,
	}
}

func (uc *CallNext) Execute(
	ctx context.Context,
	actorID string,
	branchID string,
	date string,
) (*CallNextResult, error) {

	queue, err := uc.repo.ListQueue(ctx, branchID, date)
	if err != nil {
		return nil, err
	}

	result := &CallNextResult{}

	// --------------------------------------------------
	// 1. Complete the booking currently in progress
	// --------------------------------------------------
	if cur := domain.NowServing(queue); cur != nil {
		if err := domain.Complete(cur, time.Now()); err != nil {
			return nil, err
		}
		if err := uc.repo.UpdateBooking(ctx, cur); err != nil {
			return nil, err
		}

		uc.events.PublishBookingChange("update", cur)
		uc.audit.Dispatch(audit.Event{
			ActorID:  &actorID,
			Action:   "booking_completed",
			Entity:   "booking",
			EntityID: &cur.ID,
		})
		result.Completed = cur
	}

	// --------------------------------------------------
	// 2. Promote the first waiting booking
	// --------------------------------------------------
	waiting := domain.Waiting(queue)
	if len(waiting) == 0 {
		uc.cache.InvalidateBookings(ctx)
		return result, nil
	}

	next := &waiting[0]
	if err := domain.Start(next); err != nil {
		return nil, err
	}

	if next.QueueNumber == nil {
		err = uc.repo.AssignNextQueueNumber(ctx, next)
	} else {
		err = uc.repo.UpdateBooking(ctx, next)
	}
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateBookings(ctx)
	uc.events.PublishBookingChange("update", next)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "booking_called",
		Entity:   "booking",
		EntityID: &next.ID,
		Metadata: map[string]any{"queue_number": next.QueueNumber},
	})

	result.Started = next
	return result, nil
}
