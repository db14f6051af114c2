package profile

import (
	"errors"
	"time"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrAccountNotFound  = errors.New("ebay account not found")
	ErrAccountNameEmpty = errors.New("account name is required")
)

// Profile mirrors the identity provider's user row. Email is immutable here;
// only full name and avatar are editable.
type Profile struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// Optional converts a form string to its stored representation: nil for a
// cleared field, so stores write NULL instead of "".
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// EbayAccount is a linked account label. ebay_user_id stays unset until a
// real OAuth connection exists.
type EbayAccount struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	AccountName string    `json:"account_name"`
	EbayUserID  *string   `json:"ebay_user_id"`
	IsActive    bool      `json:"is_active"`
	ConnectedAt time.Time `json:"connected_at"`
}
