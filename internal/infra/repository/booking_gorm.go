package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/models"
)

var openStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
	string(domain.StatusInProgress),
}

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Branch
// --------------------------------------------------

func (r *BookingGormRepository) GetBranch(
	ctx context.Context,
	id string,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *BookingGormRepository) ListBranches(
	ctx context.Context,
	activeOnly bool,
) ([]models.Branch, error) {

	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var branches []models.Branch
	if err := q.Order("name ASC").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *BookingGormRepository) CreateBranch(
	ctx context.Context,
	branch *models.Branch,
) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

func (r *BookingGormRepository) UpdateBranch(
	ctx context.Context,
	branch *models.Branch,
) error {
	return r.db.WithContext(ctx).Save(branch).Error
}

func (r *BookingGormRepository) DeleteBranch(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).Delete(&models.Branch{}, "id = ?", id).Error
}

func (r *BookingGormRepository) CountBookingsForBranch(
	ctx context.Context,
	branchID string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("branch_id = ?", branchID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) ListCustomers(
	ctx context.Context,
	search string,
) ([]models.User, error) {

	q := r.db.WithContext(ctx).Where("role = ?", models.RoleCustomer)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", like, like)
	}

	var users []models.User
	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *BookingGormRepository) DeleteUser(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

func (r *BookingGormRepository) CountBookingsForUser(
	ctx context.Context,
	userID string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Booking (create / read)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Branch").
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Branch").
		Where("user_id = ?", userID).
		Order("booking_date DESC, booking_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Branch").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	fromDate string,
	toDate string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Branch").
		Where("booking_date >= ? AND booking_date <= ?", fromDate, toDate).
		Order("booking_date ASC, booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (queue partition)
// --------------------------------------------------

func (r *BookingGormRepository) ListQueue(
	ctx context.Context,
	branchID string,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where(
			"branch_id = ? AND booking_date = ? AND status IN ?",
			branchID, date, openStatuses,
		).
		Order("booking_time ASC, created_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(b).Error
}

// AssignNextQueueNumber locks the (branch, date) partition, computes max+1 in
// the same transaction and persists the booking with it. The lock is what
// keeps two admins from reading the same max from stale state.
func (r *BookingGormRepository) AssignNextQueueNumber(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var partition []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "queue_number").
			Where(
				"branch_id = ? AND booking_date = ?",
				b.BranchID, b.BookingDate,
			).
			Find(&partition).Error; err != nil {
			return err
		}

		next := domain.NextQueueNumber(partition)
		b.QueueNumber = &next

		return tx.Omit(clause.Associations).Save(b).Error
	})
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
