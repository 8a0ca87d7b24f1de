package service

import (
	"context"

	"github.com/bookform/bookform-api/internal/model"
	"github.com/bookform/bookform-api/internal/queue"
	"github.com/bookform/bookform-api/internal/repository"
	queuepublisher "github.com/bookform/bookform-api/internal/service/queue_publisher"
)

// UserService covers user administration: registration, search and soft
// removal. All three are invoked only behind the auth gate.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create saves the user (Conflict error on a taken email) and stores the
// password hash, then publishes a user.registered event.
func (s *UserService) Create(ctx context.Context, user model.User, password model.Name) error {
	if err := s.users.SaveUser(ctx, user); err != nil {
		return err
	}
	if err := s.users.SaveUserPassword(ctx, user.ID(), password); err != nil {
		return err
	}

	p := user.Primitives()
	_ = queuepublisher.PublishUserRegistered(ctx, queue.UserRegisteredEvent{
		UserID: p.ID,
		Name:   p.Name,
		Email:  p.Email,
	})
	return nil
}

// Search lists non-removed users matching the filters.
func (s *UserService) Search(ctx context.Context, name, email model.NameOptional, status model.Bool) ([]model.UserPrimitives, error) {
	users, err := s.users.GetUsers(ctx, name, email, status)
	if err != nil {
		return nil, err
	}
	out := make([]model.UserPrimitives, 0, len(users))
	for _, u := range users {
		out = append(out, u.Primitives())
	}
	return out, nil
}

// Remove soft-deletes the user after checking it exists.
func (s *UserService) Remove(ctx context.Context, id model.Uuid) error {
	if _, err := s.users.GetUserByID(ctx, id); err != nil {
		return err
	}
	return s.users.ActiveRemoveUser(ctx, id)
}
