package hosted

import (
	"context"
	"fmt"

	"stockroom/internal/domain/inventory"
	"stockroom/internal/rowstore"
)

const inventoryTable = "inventory"

// InventoryRepository adapts the hosted row store to the inventory contract.
type InventoryRepository struct {
	store *rowstore.Client
}

var _ inventory.Repository = (*InventoryRepository)(nil)

func NewInventoryRepository(store *rowstore.Client) *InventoryRepository {
	return &InventoryRepository{store: store}
}

// itemPayload is the wire shape for inserts and updates. Optional fields are
// pointers so cleared form fields serialize as null, not "".
type itemPayload struct {
	Name           string  `json:"name"`
	SKU            *string `json:"sku"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	Category       *string `json:"category"`
	Description    *string `json:"description"`
	ImageURL       *string `json:"image_url"`
	EbayListingURL *string `json:"ebay_listing_url"`
	UserID         string  `json:"user_id,omitempty"`
}

func toPayload(params inventory.ItemParams) itemPayload {
	return itemPayload{
		Name:           params.Name,
		SKU:            inventory.Optional(params.SKU),
		Quantity:       params.Quantity,
		Price:          params.Price,
		Category:       inventory.Optional(params.Category),
		Description:    inventory.Optional(params.Description),
		ImageURL:       inventory.Optional(params.ImageURL),
		EbayListingURL: inventory.Optional(params.EbayListingURL),
	}
}

func (r *InventoryRepository) List(ctx context.Context, userID string) ([]inventory.Item, error) {
	var items []inventory.Item
	err := r.store.Select(ctx, inventoryTable, rowstore.Query{
		Filters:    map[string]string{"user_id": userID},
		OrderBy:    "created_at",
		Descending: true,
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	if items == nil {
		items = []inventory.Item{}
	}
	return items, nil
}

func (r *InventoryRepository) Create(ctx context.Context, userID string, params inventory.ItemParams) error {
	payload := toPayload(params)
	payload.UserID = userID
	if err := r.store.Insert(ctx, inventoryTable, payload); err != nil {
		return fmt.Errorf("failed to insert inventory row: %w", err)
	}
	return nil
}

// Update overwrites the row only when it belongs to userID; the owner filter
// makes a foreign id look like a missing row. user_id is left out of the
// payload so ownership can never change.
func (r *InventoryRepository) Update(ctx context.Context, userID, id string, params inventory.ItemParams) error {
	n, err := r.store.Update(ctx, inventoryTable, ownedRow(userID, id), toPayload(params))
	if err != nil {
		return fmt.Errorf("failed to update inventory row: %w", err)
	}
	if n == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, userID, id string) error {
	n, err := r.store.Delete(ctx, inventoryTable, ownedRow(userID, id))
	if err != nil {
		return fmt.Errorf("failed to delete inventory row: %w", err)
	}
	if n == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

func ownedRow(userID, id string) map[string]string {
	return map[string]string{"id": id, "user_id": userID}
}
