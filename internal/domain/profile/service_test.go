package profile

import (
	"context"
	"errors"
	"testing"
)

// MockRepository implements Repository for testing
type MockRepository struct {
	GetProfileFunc        func(ctx context.Context, userID string) (*Profile, error)
	UpdateProfileFunc     func(ctx context.Context, userID, fullName, avatarURL string) error
	ListEbayAccountsFunc  func(ctx context.Context, userID string) ([]EbayAccount, error)
	AddEbayAccountFunc    func(ctx context.Context, userID, accountName string) error
	DeleteEbayAccountFunc func(ctx context.Context, userID, id string) error
}

func (m *MockRepository) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockRepository) UpdateProfile(ctx context.Context, userID, fullName, avatarURL string) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, fullName, avatarURL)
	}
	return nil
}

func (m *MockRepository) ListEbayAccounts(ctx context.Context, userID string) ([]EbayAccount, error) {
	if m.ListEbayAccountsFunc != nil {
		return m.ListEbayAccountsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockRepository) AddEbayAccount(ctx context.Context, userID, accountName string) error {
	if m.AddEbayAccountFunc != nil {
		return m.AddEbayAccountFunc(ctx, userID, accountName)
	}
	return nil
}

func (m *MockRepository) DeleteEbayAccount(ctx context.Context, userID, id string) error {
	if m.DeleteEbayAccountFunc != nil {
		return m.DeleteEbayAccountFunc(ctx, userID, id)
	}
	return nil
}

func TestService_AddEbayAccount_RejectsEmptyName(t *testing.T) {
	tests := []struct {
		name        string
		accountName string
	}{
		{"Empty", ""},
		{"WhitespaceOnly", "   "},
		{"Tabs", "\t\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			repo := &MockRepository{
				AddEbayAccountFunc: func(ctx context.Context, userID, accountName string) error {
					called = true
					return nil
				},
			}
			svc := NewService(repo)

			err := svc.AddEbayAccount(context.Background(), "user-1", tt.accountName)
			if !errors.Is(err, ErrAccountNameEmpty) {
				t.Errorf("AddEbayAccount(%q) error = %v, want ErrAccountNameEmpty", tt.accountName, err)
			}
			if called {
				t.Error("no remote call should be made for an empty account name")
			}
		})
	}
}

func TestService_AddEbayAccount_Success(t *testing.T) {
	var gotName string
	repo := &MockRepository{
		AddEbayAccountFunc: func(ctx context.Context, userID, accountName string) error {
			gotName = accountName
			return nil
		},
	}
	svc := NewService(repo)

	if err := svc.AddEbayAccount(context.Background(), "user-1", "My Store"); err != nil {
		t.Fatalf("AddEbayAccount() failed: %v", err)
	}
	if gotName != "My Store" {
		t.Errorf("AddEbayAccount() sent name %q, want %q", gotName, "My Store")
	}
}

func TestService_GetProfile_MissingRowIsError(t *testing.T) {
	repo := &MockRepository{
		GetProfileFunc: func(ctx context.Context, userID string) (*Profile, error) {
			return nil, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.GetProfile(context.Background(), "user-1")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("GetProfile() error = %v, want ErrProfileNotFound", err)
	}
}

func TestService_GetProfile_Success(t *testing.T) {
	repo := &MockRepository{
		GetProfileFunc: func(ctx context.Context, userID string) (*Profile, error) {
			return &Profile{ID: userID, Email: "seller@example.com"}, nil
		},
	}
	svc := NewService(repo)

	p, err := svc.GetProfile(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if p.Email != "seller@example.com" {
		t.Errorf("GetProfile().Email = %q", p.Email)
	}
}

func TestService_DeleteEbayAccount_PropagatesError(t *testing.T) {
	storeErr := errors.New("row not found")
	repo := &MockRepository{
		DeleteEbayAccountFunc: func(ctx context.Context, userID, id string) error {
			return storeErr
		},
	}
	svc := NewService(repo)

	if err := svc.DeleteEbayAccount(context.Background(), "user-1", "acc-1"); !errors.Is(err, storeErr) {
		t.Errorf("DeleteEbayAccount() error = %v, want wrapped store error", err)
	}
}

func TestService_DeleteEbayAccount_CarriesOwner(t *testing.T) {
	var gotUserID string
	repo := &MockRepository{
		DeleteEbayAccountFunc: func(ctx context.Context, userID, id string) error {
			gotUserID = userID
			return nil
		},
	}
	svc := NewService(repo)

	if err := svc.DeleteEbayAccount(context.Background(), "user-42", "acc-1"); err != nil {
		t.Fatalf("DeleteEbayAccount() failed: %v", err)
	}
	if gotUserID != "user-42" {
		t.Errorf("DeleteEbayAccount() scoped to %q, want user-42", gotUserID)
	}
}
