package reporting

import (
	"strings"

	"github.com/queueworks/queue-booking-api/internal/models"
)

// Pure transforms over already-fetched booking sets. Everything here is
// order-preserving and leaves its input untouched; the result sets are small
// enough that the store never aggregates for us.

// FilterStatus keeps bookings with exactly the given status. "all" or ""
// pass the set through unchanged.
func FilterStatus(bookings []models.Booking, status string) []models.Booking {
	if status == "" || status == "all" {
		return bookings
	}
	var out []models.Booking
	for _, b := range bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// Search keeps bookings whose customer name or email contains the term,
// case-insensitively. An empty term passes the set through.
func Search(bookings []models.Booking, term string) []models.Booking {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return bookings
	}
	var out []models.Booking
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.User.Name), term) ||
			strings.Contains(strings.ToLower(b.User.Email), term) {
			out = append(out, b)
		}
	}
	return out
}

func TotalRevenue(bookings []models.Booking) float64 {
	var sum float64
	for _, b := range bookings {
		sum += b.TotalCost
	}
	return sum
}

func CountStatus(bookings []models.Booking, status string) int {
	n := 0
	for _, b := range bookings {
		if b.Status == status {
			n++
		}
	}
	return n
}

func RevenueByPaymentMethod(bookings []models.Booking) map[string]float64 {
	out := make(map[string]float64)
	for _, b := range bookings {
		out[b.PaymentMethod] += b.TotalCost
	}
	return out
}

func CountByService(bookings []models.Booking) map[string]int {
	out := make(map[string]int)
	for _, b := range bookings {
		out[b.ServiceCode]++
	}
	return out
}

// CountByBranch groups by branch name when the reference is loaded, falling
// back to the raw id.
func CountByBranch(bookings []models.Booking) map[string]int {
	out := make(map[string]int)
	for _, b := range bookings {
		name := b.Branch.Name
		if name == "" {
			name = b.BranchID
		}
		out[name]++
	}
	return out
}

// RevenueByDate is the daily revenue trend, keyed by booking date.
func RevenueByDate(bookings []models.Booking) map[string]float64 {
	out := make(map[string]float64)
	for _, b := range bookings {
		out[b.BookingDate] += b.TotalCost
	}
	return out
}
