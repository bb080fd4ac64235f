package retail

import (
	"strings"
	"testing"
)

func TestCustomersFields(t *testing.T) {
	g := newTestGenerator(t, 10)
	customers := g.Customers(1000)

	if len(customers) != 1000 {
		t.Fatalf("expected 1000 customers, got %d", len(customers))
	}

	states := make(map[string]bool)
	for _, s := range USStates() {
		states[s] = true
	}

	today := dateOf(fixedNow)
	earliest := today.AddDate(-2, 0, 0)

	for i, c := range customers {
		if c.ID != i+1 {
			t.Fatalf("customer %d has ID %d", i, c.ID)
		}
		if c.FirstName == "" || c.LastName == "" || c.City == "" {
			t.Errorf("customer %d has empty identity fields: %+v", c.ID, c)
		}
		wantPrefix := strings.ToLower(c.FirstName) + "." + strings.ToLower(c.LastName) + "@"
		if !strings.HasPrefix(c.Email, wantPrefix) {
			t.Errorf("customer %d email %q does not start with %q", c.ID, c.Email, wantPrefix)
		}
		if !states[c.State] {
			t.Errorf("customer %d has unknown state %q", c.ID, c.State)
		}
		if c.Country != "USA" {
			t.Errorf("customer %d country %q, want USA", c.ID, c.Country)
		}
		if c.CreatedDate.Before(earliest) || c.CreatedDate.After(today) {
			t.Errorf("customer %d created %s outside [%s, %s]", c.ID,
				c.CreatedDate.Format(DateLayout), earliest.Format(DateLayout), today.Format(DateLayout))
		}
		if c.CreatedDate != dateOf(c.CreatedDate) {
			t.Errorf("customer %d created date %v is not a calendar date", c.ID, c.CreatedDate)
		}
	}
}

func TestCustomersMissingPhoneRate(t *testing.T) {
	g := newTestGenerator(t, 11)
	customers := g.Customers(10000)

	missing := 0
	for _, c := range customers {
		if c.Phone == "" {
			missing++
		}
	}
	rate := float64(missing) / float64(len(customers))
	if rate < 0.035 || rate > 0.065 {
		t.Errorf("missing phone rate %.4f outside [0.035, 0.065]", rate)
	}
}

func TestCustomersZero(t *testing.T) {
	g := newTestGenerator(t, 12)
	customers := g.Customers(0)
	if customers == nil || len(customers) != 0 {
		t.Errorf("expected empty non-nil customer list, got %v", customers)
	}
}

func TestCustomerEmail(t *testing.T) {
	got := customerEmail("Mary", "O'Neil", "gmail.com")
	if got != "mary.o'neil@gmail.com" {
		t.Errorf("customerEmail = %q", got)
	}
}
