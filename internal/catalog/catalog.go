package catalog

import "fmt"

// Entry is one service in the static catalog. Entries are loaded at process
// start and never mutated.
type Entry struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Unit        string  `json:"unit,omitempty"`
}

// Variant is the deployment profile: which services are offered, the booking
// time window, the quantity bound and how duration scales with quantity.
type Variant struct {
	Name            string
	MaxQuantity     int
	DurationPerUnit bool
	TimeSlots       []string
	PaymentMethods  []string

	entries []Entry
	index   map[string]int
}

// ======================================================
// VARIANTS
// ======================================================

var barbershop = newVariant(Variant{
	Name:            "barbershop",
	MaxQuantity:     10,
	DurationPerUnit: false,
	TimeSlots:       halfHourSlots(9, 20),
	PaymentMethods:  []string{"gcash", "cash", "card"},
}, []Entry{
	{Code: "basic_haircut", Name: "Basic Haircut", Price: 150, DurationMin: 30},
	{Code: "premium_haircut", Name: "Premium Haircut", Price: 250, DurationMin: 45},
	{Code: "beard_trim", Name: "Beard Trim", Price: 100, DurationMin: 20},
	{Code: "shave", Name: "Shave", Price: 120, DurationMin: 25},
	{Code: "hair_color", Name: "Hair Color", Price: 500, DurationMin: 90},
	{Code: "styling", Name: "Styling", Price: 200, DurationMin: 40},
})

var laundry = newVariant(Variant{
	Name:            "laundry",
	MaxQuantity:     50,
	DurationPerUnit: true,
	TimeSlots:       halfHourSlots(8, 18),
	PaymentMethods:  []string{"gcash", "cash", "card"},
}, []Entry{
	{Code: "wash_fold", Name: "Wash & Fold", Price: 60, DurationMin: 30, Unit: "per kg"},
	{Code: "wash_only", Name: "Wash Only", Price: 40, DurationMin: 20, Unit: "per kg"},
	{Code: "dry_only", Name: "Dry Only", Price: 35, DurationMin: 20, Unit: "per kg"},
	{Code: "dry_clean", Name: "Dry Cleaning", Price: 150, DurationMin: 45, Unit: "per item"},
	{Code: "ironing", Name: "Ironing", Price: 25, DurationMin: 10, Unit: "per item"},
	{Code: "express", Name: "Express Service", Price: 100, DurationMin: 15, Unit: "per kg"},
	{Code: "bedding", Name: "Bedding & Linens", Price: 180, DurationMin: 60, Unit: "per item"},
})

func newVariant(v Variant, entries []Entry) *Variant {
	v.entries = entries
	v.index = make(map[string]int, len(entries))
	for i, e := range entries {
		v.index[e.Code] = i
	}
	return &v
}

// ByName selects the deployment variant. Unknown names are a startup
// configuration error.
func ByName(name string) (*Variant, error) {
	switch name {
	case "barbershop":
		return barbershop, nil
	case "laundry":
		return laundry, nil
	}
	return nil, fmt.Errorf("unknown catalog variant %q", name)
}

// ======================================================
// LOOKUPS
// ======================================================

// Service returns the catalog entry for a code, or nil when the code is not
// in this variant. A nil result for a code read back from the store means the
// deployment configuration changed underneath the data.
func (v *Variant) Service(code string) *Entry {
	i, ok := v.index[code]
	if !ok {
		return nil
	}
	return &v.entries[i]
}

// Services returns the catalog in its declared order.
func (v *Variant) Services() []Entry {
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

func (v *Variant) ValidTimeSlot(slot string) bool {
	for _, s := range v.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func (v *Variant) ValidPaymentMethod(method string) bool {
	for _, m := range v.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Cost applies the unit price over the quantity.
func (v *Variant) Cost(e *Entry, quantity int) float64 {
	return e.Price * float64(quantity)
}

// Duration is flat for appointment-style variants and scales with quantity
// for volume-based ones.
func (v *Variant) Duration(e *Entry, quantity int) int {
	if v.DurationPerUnit {
		return e.DurationMin * quantity
	}
	return e.DurationMin
}

// halfHourSlots builds "HH:00"/"HH:30" slots from startHour up to and
// including endHour:00.
func halfHourSlots(startHour, endHour int) []string {
	var slots []string
	for h := startHour; h < endHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	slots = append(slots, fmt.Sprintf("%02d:00", endHour))
	return slots
}
