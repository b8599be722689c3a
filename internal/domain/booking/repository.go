package booking

import (
	"context"

	"github.com/queueworks/queue-booking-api/internal/models"
)

type Repository interface {
	// -------- Branch --------
	GetBranch(
		ctx context.Context,
		id string,
	) (*models.Branch, error)

	ListBranches(
		ctx context.Context,
		activeOnly bool,
	) ([]models.Branch, error)

	CreateBranch(
		ctx context.Context,
		branch *models.Branch,
	) error

	UpdateBranch(
		ctx context.Context,
		branch *models.Branch,
	) error

	DeleteBranch(
		ctx context.Context,
		id string,
	) error

	CountBookingsForBranch(
		ctx context.Context,
		branchID string,
	) (int64, error)

	// -------- User --------
	GetUser(
		ctx context.Context,
		id string,
	) (*models.User, error)

	ListCustomers(
		ctx context.Context,
		search string,
	) ([]models.User, error)

	DeleteUser(
		ctx context.Context,
		id string,
	) error

	CountBookingsForUser(
		ctx context.Context,
		userID string,
	) (int64, error)

	// -------- Booking (create / read) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	ListBookingsForUser(
		ctx context.Context,
		userID string,
	) ([]models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		fromDate string,
		toDate string,
	) ([]models.Booking, error)

	// -------- Booking (queue partition) --------

	// ListQueue returns the open bookings (pending, confirmed, in_progress)
	// of a (branch, date) partition ordered by time slot, ties by creation.
	ListQueue(
		ctx context.Context,
		branchID string,
		date string,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// AssignNextQueueNumber computes max+1 over the booking's partition and
	// persists the booking with that number, holding the partition locked so
	// two admins cannot hand out the same number.
	AssignNextQueueNumber(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id string,
	) error
}
