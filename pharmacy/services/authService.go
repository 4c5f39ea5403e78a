package services

import (
	"Ensurance/pharmacy/models"
	"Ensurance/pharmacy/repositories"
	"context"
	"errors"
)

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login authenticates by exact email and password match and returns the
// user with the password stripped.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// IsVerified reports whether an enabled account exists for the email.
func (s *AuthService) IsVerified(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Enabled != 0, nil
}
