package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/dfranca/storefront/internal/domain"
)

// UserRepository implements storage.UserRepository using PostgreSQL.
type UserRepository struct {
	pool Pool
}

// NewUserRepository creates a new user repository.
func NewUserRepository(pool Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Add stores a new user.
func (r *UserRepository) Add(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, user_name, password_hash, roles)
		VALUES ($1, $2, $3, $4)`,
		user.ID,
		user.UserName,
		user.PasswordHash,
		user.Roles,
	)

	return mapError(err)
}

// GetBy retrieves a user by username.
func (r *UserRepository) GetBy(ctx context.Context, userName string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_name, password_hash, roles
		FROM users WHERE user_name = $1`, userName)

	return scanUser(row)
}

// GetByOr retrieves a user matching either the id or the username.
func (r *UserRepository) GetByOr(ctx context.Context, id uuid.UUID, userName string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_name, password_hash, roles
		FROM users WHERE user_name = $1 OR id = $2`, userName, id)

	return scanUser(row)
}

// scannable is satisfied by both pgx.Row and pgx.Rows
type scannable interface {
	Scan(dest ...any) error
}

func scanUser(row scannable) (*domain.User, error) {
	var user domain.User
	var hash string

	err := row.Scan(
		&user.ID,
		&user.UserName,
		&hash,
		&user.Roles,
	)
	if err != nil {
		return nil, mapError(err)
	}

	user.SetPasswordHash(hash)
	return &user, nil
}
