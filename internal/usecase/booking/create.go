package booking

import (
	"context"
	"time"

	"github.com/queueworks/queue-booking-api/internal/audit"
	"github.com/queueworks/queue-booking-api/internal/catalog"
	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID string

	BranchID      string
	ServiceCode   string
	Quantity      int
	Date          string
	TimeSlot      string
	PaymentMethod string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	variant *catalog.Variant
	audit   *audit.Dispatcher
	cache   Invalidator
	events  Publisher
}

func NewCreateBooking(
	repo domain.Repository,
	variant *catalog.Variant,
	audit *audit.Dispatcher,
	cache Invalidator,
	events Publisher,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		variant: variant,
		audit:   audit,
		cache:   cache,
		events:  events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Field validation, nothing written on failure
	// --------------------------------------------------
	fields := map[string]string{}

	if in.BranchID == "" {
		fields["branch_id"] = "branch_required"
	}

	var entry *catalog.Entry
	if in.ServiceCode == "" {
		fields["service_code"] = "service_required"
	} else if entry = uc.variant.Service(in.ServiceCode); entry == nil {
		fields["service_code"] = "unknown_service"
	}

	if in.Quantity < 1 {
		fields["quantity"] = "quantity_too_small"
	} else if in.Quantity > uc.variant.MaxQuantity {
		fields["quantity"] = "quantity_too_large"
	}

	if in.Date == "" {
		fields["booking_date"] = "date_required"
	} else if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		fields["booking_date"] = "invalid_date"
	} else if in.Date < time.Now().Format("2006-01-02") {
		fields["booking_date"] = "date_in_past"
	}

	if in.TimeSlot == "" {
		fields["booking_time"] = "time_required"
	} else if !uc.variant.ValidTimeSlot(in.TimeSlot) {
		fields["booking_time"] = "invalid_time_slot"
	}

	if in.PaymentMethod == "" {
		fields["payment_method"] = "payment_method_required"
	} else if !uc.variant.ValidPaymentMethod(in.PaymentMethod) {
		fields["payment_method"] = "invalid_payment_method"
	}

	if len(in.Notes) > 255 {
		fields["notes"] = "notes_too_long"
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	// --------------------------------------------------
	// 2. Branch must exist and be open for bookings
	// --------------------------------------------------
	branch, err := uc.repo.GetBranch(ctx, in.BranchID)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"branch_id": "branch_not_found"}}
	}
	if !branch.Active {
		return nil, &ValidationError{Fields: map[string]string{"branch_id": "branch_inactive"}}
	}

	// --------------------------------------------------
	// 3. Cost and duration from the catalog
	// --------------------------------------------------
	b := &models.Booking{
		UserID:        in.UserID,
		BranchID:      in.BranchID,
		ServiceCode:   entry.Code,
		Quantity:      in.Quantity,
		DurationMin:   uc.variant.Duration(entry, in.Quantity),
		BookingDate:   in.Date,
		BookingTime:   in.TimeSlot,
		TotalCost:     uc.variant.Cost(entry, in.Quantity),
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Invalidate listings, notify, audit
	// --------------------------------------------------
	uc.cache.InvalidateBookings(ctx)
	uc.events.PublishBookingChange("insert", b)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
