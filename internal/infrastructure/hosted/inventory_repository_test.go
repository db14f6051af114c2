package hosted

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/domain/inventory"
	"stockroom/internal/rowstore"
)

func TestInventoryRepository_ListScopesToUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("user_id"); got != "eq.user-1" {
			t.Errorf("user_id filter = %q, want eq.user-1", got)
		}
		if got := r.URL.Query().Get("order"); got != "created_at.desc" {
			t.Errorf("order = %q, want created_at.desc", got)
		}
		fmt.Fprint(w, `[{"id":"1","name":"Widget","quantity":3,"price":9.99,"user_id":"user-1"}]`)
	}))
	defer srv.Close()

	repo := NewInventoryRepository(rowstore.NewClient(srv.URL, "key"))
	items, err := repo.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Widget" {
		t.Errorf("List() = %+v", items)
	}
}

func TestInventoryRepository_CreateNormalizesEmptyOptionals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if payload["sku"] != nil {
			t.Errorf("sku = %v, want null", payload["sku"])
		}
		if payload["category"] != "Electronics" {
			t.Errorf("category = %v", payload["category"])
		}
		if payload["user_id"] != "user-1" {
			t.Errorf("user_id = %v", payload["user_id"])
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	repo := NewInventoryRepository(rowstore.NewClient(srv.URL, "key"))
	err := repo.Create(context.Background(), "user-1", inventory.ItemParams{
		Name:     "Widget",
		Quantity: 3,
		Price:    9.99,
		Category: "Electronics",
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
}

func TestInventoryRepository_UpdateOmitsOwner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if _, ok := payload["user_id"]; ok {
			t.Error("update payload must not carry user_id")
		}
		fmt.Fprint(w, `[{"id":"item-1"}]`)
	}))
	defer srv.Close()

	repo := NewInventoryRepository(rowstore.NewClient(srv.URL, "key"))
	err := repo.Update(context.Background(), "user-1", "item-1", inventory.ItemParams{Name: "Widget"})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
}

// Writes run under the service key, so the owner filter is the only thing
// standing between two users' rows. Every write must carry it.
func TestInventoryRepository_WritesScopedToOwner(t *testing.T) {
	var gotQueries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQueries = append(gotQueries, r.URL.RawQuery)
		if r.URL.Query().Get("user_id") != "eq.user-a" {
			fmt.Fprint(w, `[{"id":"item-1"}]`) // row would be hijacked
			return
		}
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	repo := NewInventoryRepository(rowstore.NewClient(srv.URL, "key"))

	// item-1 belongs to user-b; user-a's calls must match nothing.
	err := repo.Update(context.Background(), "user-a", "item-1", inventory.ItemParams{Name: "Hijack"})
	if !errors.Is(err, inventory.ErrItemNotFound) {
		t.Errorf("cross-tenant Update() error = %v, want ErrItemNotFound (queries: %v)", err, gotQueries)
	}
	if err := repo.Delete(context.Background(), "user-a", "item-1"); !errors.Is(err, inventory.ErrItemNotFound) {
		t.Errorf("cross-tenant Delete() error = %v, want ErrItemNotFound (queries: %v)", err, gotQueries)
	}
}

func TestInventoryRepository_MissingRowIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	repo := NewInventoryRepository(rowstore.NewClient(srv.URL, "key"))

	if err := repo.Update(context.Background(), "user-1", "missing", inventory.ItemParams{Name: "X"}); !errors.Is(err, inventory.ErrItemNotFound) {
		t.Errorf("Update() error = %v, want ErrItemNotFound", err)
	}
	if err := repo.Delete(context.Background(), "user-1", "missing"); !errors.Is(err, inventory.ErrItemNotFound) {
		t.Errorf("Delete() error = %v, want ErrItemNotFound", err)
	}
}
