package ports

import (
	"context"

	"github.com/inmobilia/housing-api/internal/core/domain"
)

// ListUsersFilter carries every query-builder input for the user listing.
// Age filters are pointers so "absent" and "zero" stay distinguishable: a
// malformed numeric parameter is coerced to 0 upstream and still filters.
type ListUsersFilter struct {
	Age    *int
	MinAge *int // inclusive lower bound; combined with MaxAge into a between filter
	MaxAge *int // inclusive upper bound
	// Fields maps an allow-listed field name to a substring pattern. Keys are
	// validated by the service before they reach the repository.
	Fields map[string]string
	Search string // substring OR over name, email, surname
	SortBy string
	Order  string // "asc" or "desc"; anything else drops the sort directive entirely
	Page   int    // 1-based; <= 0 disables pagination
}

// UpdateUserInput is the mass-assignment allow-list for updates. Nil fields
// are left untouched in the stored document.
type UpdateUserInput struct {
	Name        *string
	Surname     *string
	Email       *string
	DNI         *string
	Age         *int
	Picture     *string
	Description *string
	Removed     *bool
}

// UserRepository defines persistence operations for user documents.
type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns the non-removed users matching filter, in filter order.
	List(ctx context.Context, filter ListUsersFilter) ([]domain.User, error)
	// Update merges the non-nil fields of input into the document and returns
	// the updated document.
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// SoftDelete marks the document removed and returns it.
	SoftDelete(ctx context.Context, id string) (*domain.User, error)
}
