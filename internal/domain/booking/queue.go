package booking

import "github.com/queueworks/queue-booking-api/internal/models"

// Queue helpers operate on a single (branch, date) partition that has already
// been fetched and ordered by time slot. They never mutate their input.

// NextQueueNumber is the max assigned number in the partition plus one,
// starting from 1 on an empty partition.
func NextQueueNumber(partition []models.Booking) int {
	max := 0
	for _, b := range partition {
		if b.QueueNumber != nil && *b.QueueNumber > max {
			max = *b.QueueNumber
		}
	}
	return max + 1
}

// NowServing returns the booking currently in progress, or nil. The admin
// flow keeps at most one per partition.
func NowServing(partition []models.Booking) *models.Booking {
	for i := range partition {
		if Status(partition[i].Status) == StatusInProgress {
			return &partition[i]
		}
	}
	return nil
}

// Waiting returns everything not yet being served, preserving order. The
// first element is the next booking to call.
func Waiting(partition []models.Booking) []models.Booking {
	var out []models.Booking
	for _, b := range partition {
		if Status(b.Status) != StatusInProgress && !IsTerminal(Status(b.Status)) {
			out = append(out, b)
		}
	}
	return out
}
