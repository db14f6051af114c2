package inventory

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrNameRequired = errors.New("item name is required")
	ErrNegativeQty  = errors.New("quantity cannot be negative")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Item is an inventory row. Optional fields are pointers: nil means the field
// was never set or was cleared, distinct from an empty string.
type Item struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SKU            *string   `json:"sku"`
	Quantity       int       `json:"quantity"`
	Price          float64   `json:"price"`
	Category       *string   `json:"category"`
	Description    *string   `json:"description"`
	ImageURL       *string   `json:"image_url"`
	EbayListingURL *string   `json:"ebay_listing_url"`
	UserID         string    `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// LowStock reports whether the item is below the low-stock threshold.
func (i *Item) LowStock() bool {
	return i.Quantity < LowStockThreshold
}

// ItemParams carries the mutable fields submitted by the add/edit form.
// Optional fields arrive as plain strings; repository adapters convert empty
// strings to absent values at the storage boundary.
type ItemParams struct {
	Name           string  `json:"name"`
	SKU            string  `json:"sku"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"image_url"`
	EbayListingURL string  `json:"ebay_listing_url"`
}

// Validate enforces the same rules the form inputs enforce.
func (p *ItemParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if p.Quantity < 0 {
		return ErrNegativeQty
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Optional converts a form string to its stored representation: nil for empty.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
