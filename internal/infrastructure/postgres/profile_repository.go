package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"stockroom/internal/domain/profile"
)

// ProfileRepository implements profile.Repository for PostgreSQL.
type ProfileRepository struct {
	db *DB
}

var _ profile.Repository = (*ProfileRepository)(nil)

func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*profile.Profile, error) {
	query := `
		SELECT id, email, full_name, avatar_url
		FROM profiles
		WHERE id = $1
	`

	var p profile.Profile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.Email, &p.FullName, &p.AvatarURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, userID, fullName, avatarURL string) error {
	query := `
		UPDATE profiles
		SET full_name = $1, avatar_url = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query,
		profile.Optional(fullName), profile.Optional(avatarURL), userID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) ListEbayAccounts(ctx context.Context, userID string) ([]profile.EbayAccount, error) {
	query := `
		SELECT id, user_id, account_name, ebay_user_id, is_active, connected_at
		FROM ebay_accounts
		WHERE user_id = $1
		ORDER BY connected_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ebay accounts: %w", err)
	}
	defer rows.Close()

	accounts := []profile.EbayAccount{}
	for rows.Next() {
		var acc profile.EbayAccount
		err := rows.Scan(
			&acc.ID, &acc.UserID, &acc.AccountName,
			&acc.EbayUserID, &acc.IsActive, &acc.ConnectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ebay account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ebay account rows: %w", err)
	}

	return accounts, nil
}

func (r *ProfileRepository) AddEbayAccount(ctx context.Context, userID, accountName string) error {
	query := `
		INSERT INTO ebay_accounts (id, user_id, account_name, is_active)
		VALUES ($1, $2, $3, true)
	`

	_, err := r.db.ExecContext(ctx, query, uuid.NewString(), userID, accountName)
	if err != nil {
		return fmt.Errorf("failed to add ebay account: %w", err)
	}
	return nil
}

// DeleteEbayAccount removes the account only when it belongs to userID; a
// foreign id matches zero rows and reads as not found.
func (r *ProfileRepository) DeleteEbayAccount(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM ebay_accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete ebay account: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return profile.ErrAccountNotFound
	}
	return nil
}
