package booking

import (
	"context"

	"github.com/queueworks/queue-booking-api/internal/models"
)

// Invalidator drops cached booking listings after a write.
type Invalidator interface {
	InvalidateBookings(ctx context.Context)
}

// Publisher fans booking changes out to realtime subscribers.
type Publisher interface {
	PublishBookingChange(action string, b *models.Booking)
}
