package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inmobilia/housing-api/internal/api/metrics"
	"github.com/inmobilia/housing-api/internal/core/domain"
	"github.com/inmobilia/housing-api/internal/core/ports"
)

type DepartmentService struct {
	repo   ports.DepartmentRepository
	cache  ports.DepartmentCache
	logger zerolog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, cache ports.DepartmentCache, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, cache: cache, logger: logger}
}

// List returns the active departments, served from cache when warm. The empty
// listing is reported as domain.ErrNoResults, same policy as users.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	if departments, ok := s.cache.Get(ctx); ok {
		metrics.DepartmentCacheTotal.WithLabelValues("hit").Inc()
		metrics.ListQueriesTotal.WithLabelValues("departments", "ok").Inc()
		return departments, nil
	}
	metrics.DepartmentCacheTotal.WithLabelValues("miss").Inc()

	departments, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("department listing failed")
		return nil, err
	}
	if len(departments) == 0 {
		metrics.ListQueriesTotal.WithLabelValues("departments", "empty").Inc()
		return nil, domain.ErrNoResults
	}

	s.cache.Set(ctx, departments)
	metrics.ListQueriesTotal.WithLabelValues("departments", "ok").Inc()
	return departments, nil
}

func (s *DepartmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, input ports.CreateDepartmentInput) (*domain.Department, error) {
	department := &domain.Department{
		Type:      input.Type,
		Location:  input.Location,
		District:  input.District,
		Floor:     input.Floor,
		Unit:      input.Unit,
		FlatRooms: input.FlatRooms,
	}

	created, err := s.repo.Insert(ctx, department)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create department")
		return nil, err
	}

	s.cache.Invalidate(ctx)
	metrics.DepartmentsCreatedTotal.Inc()
	s.logger.Info().Str("id", created.ID.Hex()).Str("district", created.District).Msg("department created")
	return created, nil
}

func (s *DepartmentService) Update(ctx context.Context, id string, input ports.UpdateDepartmentInput) (*domain.Department, error) {
	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	s.logger.Info().Str("id", id).Msg("department updated")
	return updated, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	metrics.DepartmentsRemovedTotal.Inc()
	s.logger.Info().Str("id", id).Msg("department soft-deleted")
	return nil
}
