// Package services contains the application services sitting between the
// HTTP layer and the repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/legalease/legallite/internal/common"
	"github.com/legalease/legallite/internal/server/models"
	"github.com/legalease/legallite/internal/server/repositories/users"
)

type UserService struct {
	repo users.Repository
}

func NewUserService(repo users.Repository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user with a bcrypt-hashed password. A duplicate
// email surfaces as common.ErrAlreadyExists, a business error rather than a
// crash.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate returns the user only on an exact email and password match.
// Both an unknown email and a wrong password map to common.ErrUnauthorized so
// the caller cannot distinguish them.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {

	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrUnauthorized
	}

	return user, nil
}
