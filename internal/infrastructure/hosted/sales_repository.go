package hosted

import (
	"context"
	"fmt"
	"time"

	"stockroom/internal/domain/sales"
	"stockroom/internal/rowstore"
)

const salesTable = "sales_log"

// SalesRepository reads the sales log with the item name resolved through an
// embedded join on the inventory table.
type SalesRepository struct {
	store *rowstore.Client
}

var _ sales.Repository = (*SalesRepository)(nil)

func NewSalesRepository(store *rowstore.Client) *SalesRepository {
	return &SalesRepository{store: store}
}

type saleRow struct {
	ID            string    `json:"id"`
	SoldAt        time.Time `json:"sold_at"`
	SalePrice     float64   `json:"sale_price"`
	QuantitySold  int       `json:"quantity_sold"`
	Platform      string    `json:"platform"`
	TransactionID *string   `json:"transaction_id"`
	Inventory     *struct {
		Name string `json:"name"`
	} `json:"inventory"`
}

func (r *SalesRepository) List(ctx context.Context, userID string) ([]sales.Sale, error) {
	var rows []saleRow
	err := r.store.Select(ctx, salesTable, rowstore.Query{
		Select:     "*,inventory:inventory_id(name)",
		Filters:    map[string]string{"user_id": userID},
		OrderBy:    "sold_at",
		Descending: true,
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	result := make([]sales.Sale, 0, len(rows))
	for _, row := range rows {
		// A deleted item leaves the join empty; render the placeholder
		// instead of failing the whole page.
		itemName := sales.UnknownItemName
		if row.Inventory != nil && row.Inventory.Name != "" {
			itemName = row.Inventory.Name
		}
		result = append(result, sales.Sale{
			ID:            row.ID,
			SoldAt:        row.SoldAt,
			SalePrice:     row.SalePrice,
			QuantitySold:  row.QuantitySold,
			Platform:      row.Platform,
			TransactionID: row.TransactionID,
			ItemName:      itemName,
		})
	}
	return result, nil
}
