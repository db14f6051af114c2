package postgres

import (
	"context"
	"fmt"

	"stockroom/internal/domain/sales"
)

// SalesRepository implements sales.Repository for PostgreSQL.
type SalesRepository struct {
	db *DB
}

var _ sales.Repository = (*SalesRepository)(nil)

func NewSalesRepository(db *DB) *SalesRepository {
	return &SalesRepository{db: db}
}

func (r *SalesRepository) List(ctx context.Context, userID string) ([]sales.Sale, error) {
	// LEFT JOIN so sales of deleted items still show, under a placeholder name.
	query := `
		SELECT s.id, s.sold_at, s.sale_price, s.quantity_sold, s.platform,
		       s.transaction_id, COALESCE(i.name, $2)
		FROM sales_log s
		LEFT JOIN inventory i ON i.id = s.inventory_id
		WHERE s.user_id = $1
		ORDER BY s.sold_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, sales.UnknownItemName)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	result := []sales.Sale{}
	for rows.Next() {
		var sale sales.Sale
		err := rows.Scan(
			&sale.ID, &sale.SoldAt, &sale.SalePrice, &sale.QuantitySold,
			&sale.Platform, &sale.TransactionID, &sale.ItemName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		result = append(result, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sale rows: %w", err)
	}

	return result, nil
}
