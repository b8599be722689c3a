package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID string `gorm:"size:36;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	BranchID string `gorm:"size:36;index:idx_bookings_partition" json:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"branch"`

	ServiceCode string `gorm:"size:50;not null" json:"service_code"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	DurationMin int    `json:"duration_min"`

	// BookingDate + BookingTime form the queue partition together with
	// BranchID. Stored as plain strings, the way the booking form sends them.
	BookingDate string `gorm:"size:10;index:idx_bookings_partition" json:"booking_date"`
	BookingTime string `gorm:"size:5" json:"booking_time"`

	TotalCost     float64 `json:"total_cost"`
	PaymentMethod string  `gorm:"size:20" json:"payment_method"`
	Notes         string  `gorm:"size:255" json:"notes"`

	Status      string `gorm:"size:20;default:'pending'" json:"status"`
	QueueNumber *int   `json:"queue_number"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
