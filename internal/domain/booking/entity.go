package booking

import (
	"time"

	"github.com/queueworks/queue-booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm assigns a queue number and moves the booking to confirmed.
func Confirm(b *models.Booking, queueNumber int) error {
	if err := CanAssignQueue(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.QueueNumber = &queueNumber
	return nil
}

// Start moves a waiting booking to in_progress ("now serving").
func Start(b *models.Booking) error {
	if err := CanStart(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusInProgress)
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}
