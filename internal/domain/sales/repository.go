package sales

import "context"

// Repository lists sale records for a user, ordered by sale time descending.
// Sales are read-only from this application's perspective.
type Repository interface {
	List(ctx context.Context, userID string) ([]Sale, error)
}
