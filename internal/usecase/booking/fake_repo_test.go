package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/queueworks/queue-booking-api/internal/audit"
	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/models"
)

// fakeRepo is an in-memory domain.Repository for usecase tests.
type fakeRepo struct {
	branches map[string]*models.Branch
	users    map[string]*models.User
	bookings []*models.Booking
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		branches: map[string]*models.Branch{},
		users:    map[string]*models.User{},
	}
}

func (r *fakeRepo) addBranch(id string, active bool) *models.Branch {
	b := &models.Branch{ID: id, Name: "Branch " + id, Address: "somewhere", Active: active}
	r.branches[id] = b
	return b
}

func (r *fakeRepo) addUser(id, role string) *models.User {
	u := &models.User{ID: id, Name: "User " + id, Email: id + "@example.com", Role: role}
	r.users[id] = u
	return u
}

func (r *fakeRepo) addBooking(b models.Booking) *models.Booking {
	if b.ID == "" {
		r.nextID++
		b.ID = fmt.Sprintf("bk-%d", r.nextID)
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().Add(time.Duration(len(r.bookings)) * time.Second)
	}
	stored := b
	r.bookings = append(r.bookings, &stored)
	return &stored
}

func (r *fakeRepo) find(id string) *models.Booking {
	for _, b := range r.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// -------- Branch --------

func (r *fakeRepo) GetBranch(_ context.Context, id string) (*models.Branch, error) {
	if b, ok := r.branches[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrBusiness("branch_not_found")
}

func (r *fakeRepo) ListBranches(_ context.Context, activeOnly bool) ([]models.Branch, error) {
	var out []models.Branch
	for _, b := range r.branches {
		if activeOnly && !b.Active {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) CreateBranch(_ context.Context, b *models.Branch) error {
	r.branches[b.ID] = b
	return nil
}

func (r *fakeRepo) UpdateBranch(_ context.Context, b *models.Branch) error {
	r.branches[b.ID] = b
	return nil
}

func (r *fakeRepo) DeleteBranch(_ context.Context, id string) error {
	delete(r.branches, id)
	return nil
}

func (r *fakeRepo) CountBookingsForBranch(_ context.Context, branchID string) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if b.BranchID == branchID {
			n++
		}
	}
	return n, nil
}

// -------- User --------

func (r *fakeRepo) GetUser(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, httperr.ErrBusiness("user_not_found")
}

func (r *fakeRepo) ListCustomers(_ context.Context, _ string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == models.RoleCustomer {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteUser(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeRepo) CountBookingsForUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

// -------- Booking --------

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if b.ID == "" {
		r.nextID++
		b.ID = fmt.Sprintf("bk-%d", r.nextID)
	}
	b.CreatedAt = time.Now()
	stored := *b
	r.bookings = append(r.bookings, &stored)
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	if b := r.find(id); b != nil {
		copied := *b
		return &copied, nil
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) ListBookingsForUser(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForPeriod(_ context.Context, from, to string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BookingDate >= from && b.BookingDate <= to {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListQueue(_ context.Context, branchID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BranchID != branchID || b.BookingDate != date {
			continue
		}
		switch domain.Status(b.Status) {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusInProgress:
			out = append(out, *b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BookingTime != out[j].BookingTime {
			return out[i].BookingTime < out[j].BookingTime
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	stored := r.find(b.ID)
	if stored == nil {
		return httperr.ErrBusiness("booking_not_found")
	}
	*stored = *b
	return nil
}

func (r *fakeRepo) AssignNextQueueNumber(_ context.Context, b *models.Booking) error {
	var partition []models.Booking
	for _, other := range r.bookings {
		if other.BranchID == b.BranchID && other.BookingDate == b.BookingDate {
			partition = append(partition, *other)
		}
	}
	next := domain.NextQueueNumber(partition)
	b.QueueNumber = &next
	return r.UpdateBooking(context.Background(), b)
}

func (r *fakeRepo) DeleteBooking(_ context.Context, id string) error {
	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

var _ domain.Repository = (*fakeRepo)(nil)

// -------- test doubles for the side ports --------

type nopSink struct{}

func (nopSink) Log(*string, string, string, *string, any) error { return nil }

type nopCache struct{ invalidations int }

func (c *nopCache) InvalidateBookings(context.Context) { c.invalidations++ }

type recordingEvents struct{ actions []string }

func (e *recordingEvents) PublishBookingChange(action string, _ *models.Booking) {
	e.actions = append(e.actions, action)
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{}, zap.NewNop())
}
