package booking

import (
	"context"
	"testing"

	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/models"
)

const (
	testBranch = "b1"
	testDate   = "2026-09-01"
)

func intPtr(n int) *int { return &n }

func queueFixture(repo *fakeRepo) {
	repo.addBooking(models.Booking{
		ID: "served", UserID: "u1", BranchID: testBranch, BookingDate: testDate,
		BookingTime: "09:00", Status: "in_progress", QueueNumber: intPtr(2),
	})
	repo.addBooking(models.Booking{
		ID: "next", UserID: "u2", BranchID: testBranch, BookingDate: testDate,
		BookingTime: "09:30", Status: "confirmed", QueueNumber: intPtr(3),
	})
	repo.addBooking(models.Booking{
		ID: "later", UserID: "u3", BranchID: testBranch, BookingDate: testDate,
		BookingTime: "10:00", Status: "pending",
	})
}

func newQueueUCs(repo *fakeRepo) (*AssignQueue, *CallNext, *Skip, *CompleteCurrent) {
	d := testDispatcher()
	cache := &nopCache{}
	events := &recordingEvents{}
	callNext := NewCallNext(repo, d, cache, events)
	return NewAssignQueue(repo, d, cache, events),
		callNext,
		NewSkip(repo, d, cache, events, callNext),
		NewCompleteCurrent(repo, d, cache, events)
}

// ------------------------------
// ASSIGN QUEUE
// ------------------------------

func TestAssignQueueUsesMaxPlusOne(t *testing.T) {
	repo := newFakeRepo()
	queueFixture(repo)
	assign, _, _, _ := newQueueUCs(repo)

	b, err := assign.Execute(context.Background(), "admin", "later")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if b.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", b.Status)
	}
	if b.QueueNumber == nil || *b.QueueNumber != 4 {
		t.Fatalf("queue number = %v, want 4 (max 3 + 1)", b.QueueNumber)
	}
}

func TestAssignQueueEmptyPartitionStartsAtOne(t *testing.T) {
	repo := newFakeRepo()
	repo.addBooking(models.Booking{
		ID: "solo", BranchID: testBranch, BookingDate: testDate,
		BookingTime: "09:00", Status: "pending",
	})
	assign, _, _, _ := newQueueUCs(repo)

	b, err := assign.Execute(context.Background(), "admin", "solo")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if b.QueueNumber == nil || *b.QueueNumber != 1 {
		t.Fatalf("queue number = %v, want 1", b.QueueNumber)
	}
}

func TestAssignQueueRejections(t *testing.T) {
	repo := newFakeRepo()
	queueFixture(repo)
	repo.addBooking(models.Booking{
		ID: "done", BranchID: testBranch, BookingDate: testDate,
		BookingTime: "08:00", Status: "completed",
	})
	assign, _, _, _ := newQueueUCs(repo)

	cases := []struct {
		name     string
		id       string
		wantCode string
	}{
		{"already numbered", "next", "queue_already_assigned"},
		{"terminal state", "done", "invalid_state"},
		{"missing booking", "ghost", "booking_not_found"},
	}

	for _, tt := range cases {
		_, err := assign.Execute(context.Background(), "admin", tt.id)
		if !httperr.IsBusiness(err, tt.wantCode) {
			t.Errorf("%s: err = %v, want %s", tt.name, err, tt.wantCode)
		}
	}
}

// ------------------------------
// CALL NEXT
// ------------------------------

func TestCallNextCompletesAndPromotes(t *testing.T) {
	repo := newFakeRepo()
	queueFixture(repo)
	_, callNext, _, _ := newQueueUCs(repo)

	res, err := callNext.Execute(context.Background(), "admin", testBranch, testDate)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Completed == nil || res.Completed.ID != "served" {
		t.Fatalf("completed = %+v, want booking 'served'", res.Completed)
	}
	if res.Started == nil || res.Started.ID != "next" {
		t.Fatalf("started = %+v, want booking 'next'", res.Started)
	}

	if got := repo.find("served"); got.Status != "completed" || got.CompletedAt == nil {
		t.Errorf("served booking after call next: %+v", got)
	}
	if got := repo.find("next"); got.Status != "in_progress" {
		t.Errorf("next booking status = %q, want in_progress", got.Status)
	}
	// pre-existing number kept
	if got := repo.find("next"); got.QueueNumber == nil || *got.QueueNumber != 3 {
		t.Errorf("next booking queue number = %v, want kept 3", got.QueueNumber)
	}
}

func TestCallNextAssignsNumberWhenMissing(t *testing.T) {
	repo := newFakeRepo()
	repo.addBooking(models.Booking{
		ID: "unnumbered", BranchID: testBranch, BookingDate: testDate,
		BookingTime: "09:00", Status: "pending",
	})
	repo.addBooking(models.Booking{
		ID: "numbered", BranchID: testBranch, BookingDate: testDate,
		BookingTime: "09:30", Status: "confirmed", QueueNumber: intPtr(5),
	})
	_, callNext, _, _ := newQueueUCs(repo)

	res, err := callNext.Execute(context.Background(), "admin", testBranch, testDate)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Completed != nil {
		t.Errorf("nothing was in progress, completed = %+v", res.Completed)
	}
	if res.Started == nil || res.Started.ID != "unnumbered" {
		t.Fatalf("started = %+v, want earliest-by-slot 'unnumbered'", res.Started)
	}
	if res.Started.QueueNumber == nil || *res.Started.QueueNumber != 6 {
		t.Fatalf("assigned number = %v, want max 5 + 1", res.Started.QueueNumber)
	}
}

func TestCallNextEmptyQueue(t *testing.T) {
	repo := newFakeRepo()
	_, callNext, _, _ := newQueueUCs(repo)

	res, err := callNext.Execute(context.Background(), "admin", testBranch, testDate)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Completed != nil || res.Started != nil {
		t.Fatalf("empty partition should be a no-op, got %+v", res)
	}
}

// ------------------------------
// SKIP
// ------------------------------

func TestSkipCancelsThenPromotes(t *testing.T) {
	repo := newFakeRepo()
	queueFixture(repo)
	_, _, skip, _ := newQueueUCs(repo)

	res, err := skip.Execute(context.Background(), "admin", testBranch, testDate)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := repo.find("served"); got.Status != "cancelled" || got.CancelledAt == nil {
		t.Errorf("skipped booking: %+v", got)
	}
	if res.Started == nil || res.Started.ID != "next" {
		t.Fatalf("started = %+v, want 'next'", res.Started)
	}
	if res.Completed != nil {
		t.Errorf("skip must not complete anything, got %+v", res.Completed)
	}
}

func TestSkipWithoutCurrent(t *testing.T) {
	repo := newFakeRepo()
	repo.addBooking(models.Booking{
		ID: "waiting", BranchID: testBranch, BookingDate: testDate,
		BookingTime: "09:00", Status: "pending",
	})
	_, _, skip, _ := newQueueUCs(repo)

	_, err := skip.Execute(context.Background(), "admin", testBranch, testDate)
	if !httperr.IsBusiness(err, "no_booking_in_progress") {
		t.Fatalf("err = %v, want no_booking_in_progress", err)
	}
	if got := repo.find("waiting"); got.Status != "pending" {
		t.Errorf("waiting booking must be untouched, status = %q", got.Status)
	}
}

// ------------------------------
// COMPLETE
// ------------------------------

func TestCompleteDoesNotAdvance(t *testing.T) {
	repo := newFakeRepo()
	queueFixture(repo)
	_, _, _, complete := newQueueUCs(repo)

	b, err := complete.Execute(context.Background(), "admin", testBranch, testDate)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if b.ID != "served" || b.Status != "completed" {
		t.Fatalf("completed = %+v", b)
	}

	// no promotion happened
	if got := repo.find("next"); got.Status != "confirmed" {
		t.Errorf("next booking status = %q, want untouched confirmed", got.Status)
	}

	// partition now has no one in progress; the action reports that instead
	// of failing halfway
	if _, err := complete.Execute(context.Background(), "admin", testBranch, testDate); !httperr.IsBusiness(err, "no_booking_in_progress") {
		t.Fatalf("second complete: err = %v, want no_booking_in_progress", err)
	}
}

// ------------------------------
// CANCEL OWN / DELETE
// ------------------------------

func TestCancelOwn(t *testing.T) {
	repo := newFakeRepo()
	queueFixture(repo)
	cancel := NewCancelOwn(repo, testDispatcher(), &nopCache{}, &recordingEvents{})

	b, err := cancel.Execute(context.Background(), "u3", "later")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if b.Status != "cancelled" {
		t.Errorf("status = %q, want cancelled", b.Status)
	}

	// someone else's booking reads as not found
	if _, err := cancel.Execute(context.Background(), "u3", "next"); !httperr.IsBusiness(err, "booking_not_found") {
		t.Errorf("foreign booking: err = %v, want booking_not_found", err)
	}

	// in-progress bookings are past the point of customer cancellation
	if _, err := cancel.Execute(context.Background(), "u1", "served"); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("in_progress: err = %v, want invalid_state", err)
	}
}

func TestDeleteBooking(t *testing.T) {
	repo := newFakeRepo()
	queueFixture(repo)
	del := NewDeleteBooking(repo, testDispatcher(), &nopCache{}, &recordingEvents{})

	if err := del.Execute(context.Background(), "admin", "later"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if repo.find("later") != nil {
		t.Fatal("booking still present after delete")
	}

	if err := del.Execute(context.Background(), "admin", "later"); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("repeat delete: err = %v, want booking_not_found", err)
	}
}
