package hosted

import (
	"context"
	"fmt"

	"stockroom/internal/domain/profile"
	"stockroom/internal/rowstore"
)

const (
	profilesTable     = "profiles"
	ebayAccountsTable = "ebay_accounts"
)

// ProfileRepository covers the settings page against the hosted row store.
type ProfileRepository struct {
	store *rowstore.Client
}

var _ profile.Repository = (*ProfileRepository)(nil)

func NewProfileRepository(store *rowstore.Client) *ProfileRepository {
	return &ProfileRepository{store: store}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*profile.Profile, error) {
	var rows []profile.Profile
	err := r.store.Select(ctx, profilesTable, rowstore.Query{
		Filters: map[string]string{"id": userID},
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, userID, fullName, avatarURL string) error {
	// Cleared form fields serialize as null, matching the read model.
	payload := map[string]any{
		"full_name":  profile.Optional(fullName),
		"avatar_url": profile.Optional(avatarURL),
	}
	n, err := r.store.Update(ctx, profilesTable, map[string]string{"id": userID}, payload)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) ListEbayAccounts(ctx context.Context, userID string) ([]profile.EbayAccount, error) {
	var accounts []profile.EbayAccount
	err := r.store.Select(ctx, ebayAccountsTable, rowstore.Query{
		Filters:    map[string]string{"user_id": userID},
		OrderBy:    "connected_at",
		Descending: true,
	}, &accounts)
	if err != nil {
		return nil, fmt.Errorf("failed to list ebay accounts: %w", err)
	}
	if accounts == nil {
		accounts = []profile.EbayAccount{}
	}
	return accounts, nil
}

func (r *ProfileRepository) AddEbayAccount(ctx context.Context, userID, accountName string) error {
	// is_active and connected_at are defaulted by the store; ebay_user_id
	// stays unset until a real OAuth connection exists.
	payload := map[string]any{
		"user_id":      userID,
		"account_name": accountName,
	}
	if err := r.store.Insert(ctx, ebayAccountsTable, payload); err != nil {
		return fmt.Errorf("failed to insert ebay account: %w", err)
	}
	return nil
}

// DeleteEbayAccount removes the account only when it belongs to userID; the
// owner filter makes a foreign id look like a missing row.
func (r *ProfileRepository) DeleteEbayAccount(ctx context.Context, userID, id string) error {
	n, err := r.store.Delete(ctx, ebayAccountsTable, ownedRow(userID, id))
	if err != nil {
		return fmt.Errorf("failed to delete ebay account: %w", err)
	}
	if n == 0 {
		return profile.ErrAccountNotFound
	}
	return nil
}
