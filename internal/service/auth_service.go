// Package service holds the use cases. Every mutating flow goes through
// AuthService.CheckAccessToken before it touches persistent state, so the
// authentication rule lives in exactly one place.
package service

import (
	"context"
	"strings"

	guuid "github.com/google/uuid"

	"github.com/bookform/bookform-api/internal/model"
	"github.com/bookform/bookform-api/internal/repository"
)

// AuthService resolves bearer tokens to authenticated users. It is the
// single choke point for "is this request authenticated".
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// CheckAccessToken extracts the bearer token from the raw Authorization
// header and resolves it to an active, non-removed user. Every failure —
// malformed header, token that is not a UUID, unknown token, backend
// error — collapses into the same uniform authorization error so callers
// cannot probe which check failed.
func (s *AuthService) CheckAccessToken(ctx context.Context, header string) (model.User, error) {
	token, err := extractToken(header)
	if err != nil {
		return model.User{}, model.NewAuthError()
	}

	id, err := model.NewUuid(token.Value())
	if err != nil {
		return model.User{}, model.NewAuthError()
	}

	user, err := s.users.GetUserByAccessToken(ctx, id)
	if err != nil {
		return model.User{}, model.NewAuthError()
	}
	return user, nil
}

// CreateAccessToken generates a fresh random token identifier. It does
// not persist anything; rotation is the repository's CreateAccessToken.
func (s *AuthService) CreateAccessToken() model.Uuid {
	token, _ := model.NewUuid(guuid.NewString())
	return token
}

// extractToken enforces the exact "Bearer <token>" shape: two
// space-separated parts, the first literally "Bearer". The token itself
// is only checked for non-emptiness here.
func extractToken(header string) (model.Name, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return model.Name{}, model.NewValidationError("formato de encabezado de autorización inválido")
	}
	return model.NewName(parts[1])
}
