package inventory

import "context"

// Repository is the adapter contract against the row store. Reads and writes
// are always scoped to the owning user; List returns items ordered by
// creation time descending.
type Repository interface {
	List(ctx context.Context, userID string) ([]Item, error)
	Create(ctx context.Context, userID string, params ItemParams) error
	Update(ctx context.Context, userID, id string, params ItemParams) error
	Delete(ctx context.Context, userID, id string) error
}
