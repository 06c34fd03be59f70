package services

import (
	"context"

	"SweetOrderAPI/internal/apperr"
	"SweetOrderAPI/internal/model"
	"SweetOrderAPI/internal/repository"
)

type AuthService struct {
	Users *repository.UserRepository
}

func NewAuthService(u *repository.UserRepository) *AuthService {
	return &AuthService{Users: u}
}

// Register creates a user after checking username uniqueness. Passwords are
// stored as sent; credential handling is plaintext in this design.
func (s *AuthService) Register(ctx context.Context, u *model.User) (*model.User, error) {
	if _, err := s.Users.GetByUsername(ctx, u.Username); err == nil {
		return nil, apperr.New(apperr.Conflict, "Username already exists")
	}
	return s.Users.Create(ctx, u)
}

// Login checks the credentials and returns the user. It does not reveal
// whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperr.New(apperr.Unauthorized, "Invalid credentials")
	}
	if u.Password != password {
		return nil, apperr.New(apperr.Unauthorized, "Invalid credentials")
	}
	return u, nil
}
