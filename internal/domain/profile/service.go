package profile

import (
	"context"
	"fmt"
	"strings"
)

// Service contains the business logic for the settings page.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetProfile fetches the caller's profile row. A missing row is an error, not
// a silently defaulted profile.
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// UpdateProfile overwrites the two editable fields on the caller's profile.
func (s *Service) UpdateProfile(ctx context.Context, userID, fullName, avatarURL string) error {
	if err := s.repo.UpdateProfile(ctx, userID, fullName, avatarURL); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// ListEbayAccounts returns the caller's linked accounts, newest first.
func (s *Service) ListEbayAccounts(ctx context.Context, userID string) ([]EbayAccount, error) {
	return s.repo.ListEbayAccounts(ctx, userID)
}

// AddEbayAccount links a new account label. An empty or whitespace-only name
// is rejected before any request is dispatched.
func (s *Service) AddEbayAccount(ctx context.Context, userID, accountName string) error {
	if strings.TrimSpace(accountName) == "" {
		return ErrAccountNameEmpty
	}
	if err := s.repo.AddEbayAccount(ctx, userID, accountName); err != nil {
		return fmt.Errorf("failed to add ebay account: %w", err)
	}
	return nil
}

// DeleteEbayAccount removes one of the caller's linked accounts by id. An
// account owned by someone else is reported as not found.
func (s *Service) DeleteEbayAccount(ctx context.Context, userID, id string) error {
	if err := s.repo.DeleteEbayAccount(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete ebay account: %w", err)
	}
	return nil
}
