package inventory

import (
	"context"
	"fmt"
)

// Service contains the business logic for inventory operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the user's full inventory, newest first. An empty inventory is
// a valid, non-error result.
func (s *Service) List(ctx context.Context, userID string) ([]Item, error) {
	return s.repo.List(ctx, userID)
}

// Create validates the submitted fields and inserts a new item owned by userID.
func (s *Service) Create(ctx context.Context, userID string, params ItemParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, userID, params); err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Update overwrites all mutable fields of an item owned by userID. The id,
// owner and creation time are never touched; a row owned by someone else is
// reported as not found.
func (s *Service) Update(ctx context.Context, userID, id string, params ItemParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, userID, id, params); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

// Delete removes exactly one item owned by userID. A failed delete never
// affects other rows.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
