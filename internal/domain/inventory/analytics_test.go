package inventory

import (
	"math"
	"testing"
)

func strPtr(s string) *string { return &s }

func sampleItems() []Item {
	return []Item{
		{ID: "1", Name: "Vintage Camera", SKU: strPtr("CAM-001"), Category: strPtr("Electronics"), Quantity: 3, Price: 120.50},
		{ID: "2", Name: "Widget", SKU: strPtr("W1"), Quantity: 3, Price: 9.99},
		{ID: "3", Name: "Desk Lamp", Category: strPtr("Home"), Quantity: 10, Price: 25.00},
		{ID: "4", Name: "camera strap", Quantity: 5, Price: 8.00},
	}
}

func TestFilter_EmptyTermReturnsAllInOrder(t *testing.T) {
	items := sampleItems()
	got := Filter(items, "")
	if len(got) != len(items) {
		t.Fatalf("Filter(\"\") returned %d items, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i].ID != items[i].ID {
			t.Errorf("Filter(\"\") reordered items: position %d has %q, want %q", i, got[i].ID, items[i].ID)
		}
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{"MatchesNameCaseInsensitive", "CAMERA", []string{"1", "4"}},
		{"MatchesSKU", "cam-0", []string{"1"}},
		{"MatchesCategory", "home", []string{"3"}},
		{"NoMatch", "typewriter", nil},
		{"SubstringAcrossFields", "w1", []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleItems(), tt.term)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter(%q) returned %d items, want %d", tt.term, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Filter(%q)[%d].ID = %q, want %q", tt.term, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilter_AbsentOptionalFieldsNeverMatch(t *testing.T) {
	items := []Item{{ID: "1", Name: "Plain", SKU: nil, Category: nil}}
	if got := Filter(items, "x"); len(got) != 0 {
		t.Errorf("nil SKU/category should not match, got %d items", len(got))
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleItems())

	if s.TotalItems != 4 {
		t.Errorf("TotalItems = %d, want 4", s.TotalItems)
	}
	// 3*120.50 + 3*9.99 + 10*25.00 + 5*8.00 = 681.47
	if math.Abs(s.TotalValue-681.47) > 1e-9 {
		t.Errorf("TotalValue = %f, want 681.47", s.TotalValue)
	}
	// quantity 3 and 3 are low stock, 5 is not, 10 is not
	if s.LowStock != 2 {
		t.Errorf("LowStock = %d, want 2", s.LowStock)
	}
}

func TestSummarize_EmptyList(t *testing.T) {
	s := Summarize(nil)
	if s.TotalItems != 0 || s.TotalValue != 0 || s.LowStock != 0 {
		t.Errorf("Summarize(nil) = %+v, want zeroes", s)
	}
}

func TestLowStockBoundary(t *testing.T) {
	four := Item{Quantity: 4}
	five := Item{Quantity: 5}
	if !four.LowStock() {
		t.Error("quantity 4 should be low stock")
	}
	if five.LowStock() {
		t.Error("quantity 5 should not be low stock")
	}
}

func TestSummarize_WidgetScenario(t *testing.T) {
	items := []Item{{Name: "Widget", SKU: strPtr("W1"), Quantity: 3, Price: 9.99}}
	s := Summarize(items)
	if math.Abs(s.TotalValue-29.97) > 1e-9 {
		t.Errorf("TotalValue = %f, want 29.97", s.TotalValue)
	}
	if s.LowStock != 1 {
		t.Errorf("LowStock = %d, want 1", s.LowStock)
	}
	if !items[0].LowStock() {
		t.Error("Widget with quantity 3 should show the low stock badge")
	}
}
