package hosted

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/rowstore"
)

func TestSalesRepository_ListResolvesItemNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("select"); got != "*,inventory:inventory_id(name)" {
			t.Errorf("select = %q", got)
		}
		fmt.Fprint(w, `[
			{"id":"s1","sold_at":"2026-08-20T10:00:00Z","sale_price":24.99,"quantity_sold":2,"platform":"ebay","inventory":{"name":"Widget"}},
			{"id":"s2","sold_at":"2026-08-19T10:00:00Z","sale_price":5.00,"quantity_sold":1,"platform":"ebay","inventory":null}
		]`)
	}))
	defer srv.Close()

	repo := NewSalesRepository(rowstore.NewClient(srv.URL, "key"))
	result, err := repo.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("List() returned %d sales, want 2", len(result))
	}
	if result[0].ItemName != "Widget" {
		t.Errorf("joined name = %q, want Widget", result[0].ItemName)
	}
	if result[1].ItemName != "Unknown Item" {
		t.Errorf("orphaned sale name = %q, want Unknown Item", result[1].ItemName)
	}
}
