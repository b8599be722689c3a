package booking

import (
	"testing"
	"time"

	"github.com/queueworks/queue-booking-api/internal/models"
)

func intPtr(n int) *int { return &n }

func partitionFixture() []models.Booking {
	return []models.Booking{
		{ID: "a", Status: "completed", QueueNumber: intPtr(1), BookingTime: "09:00"},
		{ID: "b", Status: "in_progress", QueueNumber: intPtr(2), BookingTime: "09:30"},
		{ID: "c", Status: "confirmed", QueueNumber: intPtr(3), BookingTime: "10:00"},
		{ID: "d", Status: "pending", BookingTime: "10:30"},
		{ID: "e", Status: "cancelled", BookingTime: "11:00"},
	}
}

func TestNextQueueNumber(t *testing.T) {
	if got := NextQueueNumber(nil); got != 1 {
		t.Fatalf("empty partition: got %d, want 1", got)
	}

	if got := NextQueueNumber(partitionFixture()); got != 4 {
		t.Fatalf("got %d, want max+1 = 4", got)
	}

	// unassigned numbers do not count toward the max
	unassigned := []models.Booking{
		{Status: "pending"},
		{Status: "pending"},
	}
	if got := NextQueueNumber(unassigned); got != 1 {
		t.Fatalf("all-unassigned partition: got %d, want 1", got)
	}
}

func TestNowServing(t *testing.T) {
	p := partitionFixture()
	cur := NowServing(p)
	if cur == nil || cur.ID != "b" {
		t.Fatalf("NowServing = %+v, want booking b", cur)
	}

	if NowServing(nil) != nil {
		t.Fatal("empty partition must have no one serving")
	}

	p[1].Status = "completed"
	if NowServing(p) != nil {
		t.Fatal("no in_progress booking left, expected nil")
	}
}

func TestWaitingPreservesOrder(t *testing.T) {
	w := Waiting(partitionFixture())

	if len(w) != 2 {
		t.Fatalf("waiting = %d bookings, want 2", len(w))
	}
	if w[0].ID != "c" || w[1].ID != "d" {
		t.Fatalf("waiting order = [%s %s], want [c d]", w[0].ID, w[1].ID)
	}
}

func TestConfirmAssignsNumber(t *testing.T) {
	b := models.Booking{Status: "pending"}
	if err := Confirm(&b, 7); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if b.Status != "confirmed" || b.QueueNumber == nil || *b.QueueNumber != 7 {
		t.Fatalf("after Confirm: %+v", b)
	}

	done := models.Booking{Status: "completed"}
	if err := Confirm(&done, 8); err == nil {
		t.Fatal("Confirm on a completed booking must fail")
	}
}

func TestCompleteAndCancelStampTimes(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	b := models.Booking{Status: "in_progress"}
	if err := Complete(&b, now); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if b.Status != "completed" || b.CompletedAt == nil || !b.CompletedAt.Equal(now) {
		t.Fatalf("after Complete: %+v", b)
	}

	c := models.Booking{Status: "confirmed"}
	if err := Cancel(&c, now); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if c.Status != "cancelled" || c.CancelledAt == nil {
		t.Fatalf("after Cancel: %+v", c)
	}
}
