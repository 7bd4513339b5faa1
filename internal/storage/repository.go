// Package storage defines the repository interfaces for data persistence.
//
// These interfaces keep the service layer independent of the storage
// implementation. Each call is atomic; lookups signal absence with
// domain.ErrNotFound, and any other error is a generic I/O failure the
// services fold into an unexpected outcome.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/dfranca/storefront/internal/domain"
)

// UserRepository defines the operations for user persistence.
type UserRepository interface {
	// Add stores a new user.
	Add(ctx context.Context, user *domain.User) error

	// GetBy retrieves a user by username. Returns ErrNotFound if absent.
	GetBy(ctx context.Context, userName string) (*domain.User, error)

	// GetByOr retrieves a user matching either the id or the username.
	// Returns ErrNotFound if neither matches.
	GetByOr(ctx context.Context, id uuid.UUID, userName string) (*domain.User, error)
}

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// Add stores a new product.
	Add(ctx context.Context, product *domain.Product) error

	// GetBy retrieves a product by id. Returns ErrNotFound if absent.
	GetBy(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// GetByOr retrieves a product matching either the id or the name.
	// Returns ErrNotFound if neither matches.
	GetByOr(ctx context.Context, id uuid.UUID, name string) (*domain.Product, error)

	// Update overwrites an existing product's fields.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product and reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]domain.Product, error)
}
