package service

import (
	"context"

	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/events"
	"github.com/spec-kit/user-service/internal/repository"
	"github.com/spec-kit/user-service/internal/validation"
)

// UserService coordinates validation, persistence and event publication
// for user records.
type UserService struct {
	repo       repository.UserRepository
	dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(repo repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{repo: repo, dispatcher: dispatcher}
}

// List returns all records ordered newest first.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Get returns a single record by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new record. The store assigns id and
// timestamps; a duplicate email surfaces as a conflict from the
// repository, never from a pre-read.
func (s *UserService) Create(ctx context.Context, input validation.UserInput) (*domain.User, error) {
	normalized, err := validation.ValidateCreate(input)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:    normalized.Name,
		Email:   normalized.Email,
		Phone:   normalized.Phone,
		Message: normalized.Message,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUserCreated, user.ID,
		events.UserChangedPayload{Name: user.Name, Email: user.Email}))
	return user, nil
}

// Update validates the payload and rewrites every mutable field of the
// record in one statement.
func (s *UserService) Update(ctx context.Context, id int64, input validation.UserInput) (*domain.User, error) {
	normalized, err := validation.ValidateUpdate(input)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:      id,
		Name:    normalized.Name,
		Email:   normalized.Email,
		Phone:   normalized.Phone,
		Message: normalized.Message,
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUserUpdated, user.ID,
		events.UserChangedPayload{Name: user.Name, Email: user.Email}))
	return user, nil
}

// Delete removes a record permanently.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUserDeleted, id, nil))
	return nil
}
