package profile

import "context"

// Repository covers the settings page: the user's profile row plus their
// linked eBay account labels.
type Repository interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, userID, fullName, avatarURL string) error

	ListEbayAccounts(ctx context.Context, userID string) ([]EbayAccount, error)
	AddEbayAccount(ctx context.Context, userID, accountName string) error
	DeleteEbayAccount(ctx context.Context, userID, id string) error
}
