package services

import (
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"context"
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
