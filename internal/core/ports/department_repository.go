package ports

import (
	"context"

	"github.com/inmobilia/housing-api/internal/core/domain"
)

// UpdateDepartmentInput is the mass-assignment allow-list for department updates.
type UpdateDepartmentInput struct {
	Type      *string
	Location  *string
	District  *string
	Floor     *string
	Unit      *string
	FlatRooms *int
	Removed   *bool
}

// DepartmentRepository defines persistence operations for department documents.
type DepartmentRepository interface {
	Insert(ctx context.Context, d *domain.Department) (*domain.Department, error)
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	// ListActive returns every document whose removed flag is not true.
	ListActive(ctx context.Context) ([]domain.Department, error)
	Update(ctx context.Context, id string, input UpdateDepartmentInput) (*domain.Department, error)
	SoftDelete(ctx context.Context, id string) (*domain.Department, error)
}

// DepartmentCache fronts the active-department listing. Implementations must
// treat their own failures as misses so a cache outage never fails a read.
type DepartmentCache interface {
	// Get returns the cached listing and whether the cache was warm.
	Get(ctx context.Context) ([]domain.Department, bool)
	Set(ctx context.Context, departments []domain.Department)
	Invalidate(ctx context.Context)
}
