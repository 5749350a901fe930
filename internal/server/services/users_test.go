package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/legalease/legallite/internal/common"
	"github.com/legalease/legallite/internal/server/models"
)

// --- helpers ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	created []*models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, u)
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "u-1"
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return string(h)
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := NewUserService(repo)

	u, err := s.Register(context.Background(), "alice@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %q", u.Email)
	}
	if u.PasswordHash == "s3cret-pass" || u.PasswordHash == "" {
		t.Fatalf("password must be stored hashed, got %q", u.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrAlreadyExists}
	s := NewUserService(repo)

	_, err := s.Register(context.Background(), "alice@example.com", "pass")
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestRegister_EmptyInputRejected(t *testing.T) {
	s := NewUserService(&fakeUsersRepo{})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pass"},
		{"blank email", "   ", "pass"},
		{"empty password", "alice@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.email, tt.password)
			if !errors.Is(err, common.ErrValidation) {
				t.Fatalf("want ErrValidation, got %v", err)
			}
		})
	}
}

// --- Authenticate ---

func TestAuthenticate_Success(t *testing.T) {
	hash := mustHash(t, "correct-horse")
	repo := &fakeUsersRepo{getOut: &models.User{ID: "u-1", Email: "alice@example.com", PasswordHash: hash}}
	s := NewUserService(repo)

	u, err := s.Authenticate(context.Background(), "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if u.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	hash := mustHash(t, "correct-horse")
	repo := &fakeUsersRepo{getOut: &models.User{Email: "alice@example.com", PasswordHash: hash}}
	s := NewUserService(repo)

	_, err := s.Authenticate(context.Background(), "alice@example.com", "battery-staple")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	repo := &fakeUsersRepo{getErr: common.ErrNotFound}
	s := NewUserService(repo)

	_, err := s.Authenticate(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestAuthenticate_RepoFailure(t *testing.T) {
	repo := &fakeUsersRepo{getErr: errors.New("db down")}
	s := NewUserService(repo)

	_, err := s.Authenticate(context.Background(), "alice@example.com", "pass")
	if !errors.Is(err, common.ErrInternal) {
		t.Fatalf("want ErrInternal, got %v", err)
	}
}
