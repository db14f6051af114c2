package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"stockroom/internal/domain/inventory"
)

// InventoryRepository implements inventory.Repository for PostgreSQL.
type InventoryRepository struct {
	db *DB
}

var _ inventory.Repository = (*InventoryRepository)(nil)

func NewInventoryRepository(db *DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) List(ctx context.Context, userID string) ([]inventory.Item, error) {
	query := `
		SELECT id, name, sku, quantity, price, category, description,
		       image_url, ebay_listing_url, user_id, created_at
		FROM inventory
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	items := []inventory.Item{}
	for rows.Next() {
		var item inventory.Item
		err := rows.Scan(
			&item.ID, &item.Name, &item.SKU, &item.Quantity, &item.Price,
			&item.Category, &item.Description, &item.ImageURL,
			&item.EbayListingURL, &item.UserID, &item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory rows: %w", err)
	}

	return items, nil
}

func (r *InventoryRepository) Create(ctx context.Context, userID string, params inventory.ItemParams) error {
	query := `
		INSERT INTO inventory (id, name, sku, quantity, price, category,
		                       description, image_url, ebay_listing_url, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(
		ctx, query,
		uuid.NewString(), params.Name, inventory.Optional(params.SKU),
		params.Quantity, params.Price, inventory.Optional(params.Category),
		inventory.Optional(params.Description), inventory.Optional(params.ImageURL),
		inventory.Optional(params.EbayListingURL), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

// Update overwrites the row only when it belongs to userID; a foreign id
// matches zero rows and reads as not found.
func (r *InventoryRepository) Update(ctx context.Context, userID, id string, params inventory.ItemParams) error {
	query := `
		UPDATE inventory
		SET name = $1, sku = $2, quantity = $3, price = $4, category = $5,
		    description = $6, image_url = $7, ebay_listing_url = $8
		WHERE id = $9 AND user_id = $10
	`

	result, err := r.db.ExecContext(
		ctx, query,
		params.Name, inventory.Optional(params.SKU), params.Quantity,
		params.Price, inventory.Optional(params.Category),
		inventory.Optional(params.Description), inventory.Optional(params.ImageURL),
		inventory.Optional(params.EbayListingURL), id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	return requireRow(result)
}

func (r *InventoryRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM inventory WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}
