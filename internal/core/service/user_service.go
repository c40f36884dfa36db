package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inmobilia/housing-api/internal/api/metrics"
	"github.com/inmobilia/housing-api/internal/core/domain"
	"github.com/inmobilia/housing-api/internal/core/ports"
)

// filterableUserFields is the allow-list for generic substring filters on the
// listing endpoint. Unknown parameter names are rejected instead of being
// forwarded to the store.
var filterableUserFields = map[string]bool{
	"name":        true,
	"surname":     true,
	"email":       true,
	"dni":         true,
	"picture":     true,
	"description": true,
}

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// List runs the filtered listing. An empty result surfaces as
// domain.ErrNoResults so the edge reports 404 rather than an empty array.
func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) ([]domain.User, error) {
	for field := range filter.Fields {
		if !filterableUserFields[field] {
			s.logger.Debug().Str("field", field).Msg("rejected filter field")
			return nil, domain.ErrInvalidFilter
		}
	}

	users, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("user listing failed")
		return nil, err
	}
	if len(users) == 0 {
		metrics.ListQueriesTotal.WithLabelValues("users", "empty").Inc()
		return nil, domain.ErrNoResults
	}

	metrics.ListQueriesTotal.WithLabelValues("users", "ok").Inc()
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new user. Shape validation happens at the transport edge;
// email/dni uniqueness is enforced by the store's unique indexes and surfaces
// here as domain.ErrUserExists.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	user := &domain.User{
		Name:        input.Name,
		Surname:     input.Surname,
		Email:       input.Email,
		DNI:         input.DNI,
		Age:         input.Age,
		Picture:     input.Picture,
		Description: input.Description,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("id", created.ID.Hex()).Str("email", created.Email).Msg("user created")
	return created, nil
}

// Update merges the non-nil fields of input into the document. Removed
// documents are still updatable.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", id).Msg("user updated")
	return updated, nil
}

// Delete marks the user removed. The document remains fetchable by id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	metrics.UsersRemovedTotal.Inc()
	s.logger.Info().Str("id", id).Msg("user soft-deleted")
	return nil
}
