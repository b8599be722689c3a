package booking

import (
	"context"
	"testing"

	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/models"
)

func TestDeleteBranchGuard(t *testing.T) {
	repo := newFakeRepo()
	repo.addBranch("busy", true)
	repo.addBranch("idle", true)
	repo.addBooking(models.Booking{BranchID: "busy", BookingDate: "2026-09-01", Status: "pending"})

	uc := NewDeleteBranch(repo, testDispatcher())

	err := uc.Execute(context.Background(), "admin", "busy")
	if !httperr.IsBusiness(err, "branch_has_bookings") {
		t.Fatalf("err = %v, want branch_has_bookings", err)
	}
	if _, ok := repo.branches["busy"]; !ok {
		t.Fatal("guarded branch must survive the rejected delete")
	}

	if err := uc.Execute(context.Background(), "admin", "idle"); err != nil {
		t.Fatalf("idle branch delete: %v", err)
	}
	if _, ok := repo.branches["idle"]; ok {
		t.Fatal("idle branch still present")
	}

	if err := uc.Execute(context.Background(), "admin", "ghost"); !httperr.IsBusiness(err, "branch_not_found") {
		t.Fatalf("missing branch: err = %v", err)
	}
}

func TestDeleteUserGuard(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("busy", models.RoleCustomer)
	repo.addUser("idle", models.RoleCustomer)
	repo.addBooking(models.Booking{UserID: "busy", BranchID: "b1", BookingDate: "2026-09-01", Status: "completed"})

	uc := NewDeleteUser(repo, testDispatcher())

	err := uc.Execute(context.Background(), "admin", "busy")
	if !httperr.IsBusiness(err, "user_has_bookings") {
		t.Fatalf("err = %v, want user_has_bookings", err)
	}
	if _, ok := repo.users["busy"]; !ok {
		t.Fatal("guarded user must survive the rejected delete")
	}

	if err := uc.Execute(context.Background(), "admin", "idle"); err != nil {
		t.Fatalf("idle user delete: %v", err)
	}

	if err := uc.Execute(context.Background(), "admin", "ghost"); !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("missing user: err = %v", err)
	}
}
