package ports

import (
	"context"

	"github.com/inmobilia/housing-api/internal/core/domain"
)

// CreateDepartmentInput carries the fields a caller may set on creation.
type CreateDepartmentInput struct {
	Type      string
	Location  string
	District  string
	Floor     string
	Unit      string
	FlatRooms int
}

// DepartmentService defines use-case operations for the department resource.
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Get(ctx context.Context, id string) (*domain.Department, error)
	Create(ctx context.Context, input CreateDepartmentInput) (*domain.Department, error)
	Update(ctx context.Context, id string, input UpdateDepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}
