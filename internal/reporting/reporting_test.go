package reporting

import (
	"testing"

	"github.com/queueworks/queue-booking-api/internal/models"
)

func fixture() []models.Booking {
	return []models.Booking{
		{
			ID: "1", Status: "pending", TotalCost: 150, PaymentMethod: "cash",
			ServiceCode: "basic_haircut", BookingDate: "2026-09-01",
			Branch: models.Branch{Name: "Downtown"},
			User:   models.User{Name: "Maria Santos", Email: "maria@example.com"},
		},
		{
			ID: "2", Status: "completed", TotalCost: 300, PaymentMethod: "gcash",
			ServiceCode: "wash_fold", BookingDate: "2026-09-01",
			Branch: models.Branch{Name: "Downtown"},
			User:   models.User{Name: "Juan Dela Cruz", Email: "juan@example.com"},
		},
		{
			ID: "3", Status: "completed", TotalCost: 250, PaymentMethod: "cash",
			ServiceCode: "basic_haircut", BookingDate: "2026-09-02",
			BranchID: "b9",
			User:     models.User{Name: "Ana Reyes", Email: "ANA@EXAMPLE.COM"},
		},
	}
}

func ids(bookings []models.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}

func TestFilterStatus(t *testing.T) {
	all := fixture()

	if got := FilterStatus(all, "all"); len(got) != len(all) {
		t.Fatalf(`"all" filter returned %d of %d`, len(got), len(all))
	}
	if got := FilterStatus(all, ""); len(got) != len(all) {
		t.Fatal("empty filter must pass everything through")
	}

	completed := FilterStatus(all, "completed")
	if len(completed) != 2 || completed[0].ID != "2" || completed[1].ID != "3" {
		t.Fatalf("completed = %v, want [2 3] in order", ids(completed))
	}

	if got := FilterStatus(all, "in_progress"); len(got) != 0 {
		t.Fatalf("no in_progress bookings expected, got %v", ids(got))
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	all := fixture()

	cases := []struct {
		term string
		want []string
	}{
		{"maria", []string{"1"}},
		{"MARIA", []string{"1"}},
		{"ana", []string{"3"}},          // matches upper-cased stored email too
		{"@example.com", []string{"1", "2", "3"}},
		{"dela cruz", []string{"2"}},
		{"", []string{"1", "2", "3"}},
		{"  ", []string{"1", "2", "3"}},
		{"nobody", nil},
	}

	for _, tt := range cases {
		got := ids(Search(all, tt.term))
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.term, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Search(%q) = %v, want %v", tt.term, got, tt.want)
				break
			}
		}
	}
}

func TestAggregations(t *testing.T) {
	all := fixture()

	if got := TotalRevenue(all); got != 700 {
		t.Errorf("TotalRevenue = %v, want 700", got)
	}
	if got := CountStatus(all, "completed"); got != 2 {
		t.Errorf("CountStatus(completed) = %d, want 2", got)
	}

	byPayment := RevenueByPaymentMethod(all)
	if byPayment["cash"] != 400 || byPayment["gcash"] != 300 {
		t.Errorf("RevenueByPaymentMethod = %v", byPayment)
	}

	byService := CountByService(all)
	if byService["basic_haircut"] != 2 || byService["wash_fold"] != 1 {
		t.Errorf("CountByService = %v", byService)
	}

	byBranch := CountByBranch(all)
	if byBranch["Downtown"] != 2 || byBranch["b9"] != 1 {
		t.Errorf("CountByBranch = %v, want name grouping with id fallback", byBranch)
	}

	byDate := RevenueByDate(all)
	if byDate["2026-09-01"] != 450 || byDate["2026-09-02"] != 250 {
		t.Errorf("RevenueByDate = %v", byDate)
	}
}

func TestTransformsDoNotMutateInput(t *testing.T) {
	all := fixture()
	FilterStatus(all, "completed")
	Search(all, "maria")

	if all[0].ID != "1" || all[1].ID != "2" || all[2].ID != "3" {
		t.Fatal("input slice was reordered")
	}
}
