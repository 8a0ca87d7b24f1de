package service

import (
	"context"

	"github.com/bookform/bookform-api/internal/model"
	"github.com/bookform/bookform-api/internal/repository"
)

// LoginResult is what a successful login returns to the client: the new
// access token plus minimal user info.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

// LoginService validates credentials and rotates the caller's access
// token (GetUserAuth in the original model).
type LoginService struct {
	users repository.UserRepository
}

func NewLoginService(users repository.UserRepository) *LoginService {
	return &LoginService{users: users}
}

// Execute checks the email/password pair, rotates the access token and
// stamps the last login. An unknown email and a wrong password produce
// the identical error.
func (s *LoginService) Execute(ctx context.Context, email, password model.Name) (LoginResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email, model.NoUuid())
	if err != nil || user == nil {
		return LoginResult{}, model.NewCredentialsError()
	}

	if err := s.users.CheckPassword(ctx, user.ID(), password); err != nil {
		return LoginResult{}, model.NewCredentialsError()
	}

	token, err := s.users.CreateAccessToken(ctx, user.ID())
	if err != nil {
		return LoginResult{}, err
	}
	if err := s.users.UpdateLastLogin(ctx, user.ID()); err != nil {
		return LoginResult{}, err
	}

	p := user.Primitives()
	return LoginResult{
		AccessToken: token.Value(),
		UserID:      p.ID,
		Name:        p.Name,
		Email:       p.Email,
	}, nil
}
