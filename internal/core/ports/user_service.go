package ports

import (
	"context"

	"github.com/inmobilia/housing-api/internal/core/domain"
)

// CreateUserInput carries the validated fields a caller may set on creation.
type CreateUserInput struct {
	Name        string
	Surname     string
	Email       string
	DNI         string
	Age         int
	Picture     string
	Description string
}

// UserService defines use-case operations for the user resource.
type UserService interface {
	// List runs the filtered, sorted listing. An empty result is reported as
	// domain.ErrNoResults, never as an empty slice.
	List(ctx context.Context, filter ListUsersFilter) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete soft-deletes: the document stays fetchable by id but disappears
	// from listings.
	Delete(ctx context.Context, id string) error
}
