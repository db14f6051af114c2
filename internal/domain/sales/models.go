package sales

import "time"

// UnknownItemName is shown when a sale references an item that no longer
// resolves (deleted item or broken join).
const UnknownItemName = "Unknown Item"

// Sale is a read-only sale record joined with its item's name.
type Sale struct {
	ID            string    `json:"id"`
	SoldAt        time.Time `json:"sold_at"`
	SalePrice     float64   `json:"sale_price"`
	QuantitySold  int       `json:"quantity_sold"`
	Platform      string    `json:"platform"`
	TransactionID *string   `json:"transaction_id"`
	ItemName      string    `json:"item_name"`
}

// Summary holds the sales page aggregates.
type Summary struct {
	TotalRevenue float64 `json:"totalRevenue"`
	ItemsSold    int     `json:"itemsSold"`
}

// Summarize computes all-time revenue and total quantity sold.
func Summarize(sales []Sale) Summary {
	var s Summary
	for _, sale := range sales {
		s.TotalRevenue += sale.SalePrice * float64(sale.QuantitySold)
		s.ItemsSold += sale.QuantitySold
	}
	return s
}
