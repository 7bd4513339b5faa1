package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfranca/storefront/internal/domain"
	"github.com/dfranca/storefront/internal/storage/postgres"
)

var errConnectionRefused = errors.New("connection refused")

func userRows(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_name", "password_hash", "roles"}).
		AddRow(u.ID, u.UserName, u.PasswordHash, u.Roles)
}

func testUser() *domain.User {
	u := &domain.User{
		ID:       uuid.New(),
		UserName: "bob",
		Roles:    "Admin,User",
	}
	u.SetPasswordHash("$2a$12$stored-hash")
	return u
}

func TestUserRepository_GetBy(t *testing.T) {
	ctx := context.Background()
	user := testUser()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, user_name, password_hash, roles").
			WithArgs(user.UserName).
			WillReturnRows(userRows(user))

		repo := postgres.NewUserRepository(mock)

		got, err := repo.GetBy(ctx, user.UserName)
		require.NoError(t, err)
		assert.Equal(t, user, got)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, user_name, password_hash, roles").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		got, err := repo.GetBy(ctx, "nobody")
		assert.Nil(t, got)
		require.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, user_name, password_hash, roles").
			WithArgs(user.UserName).
			WillReturnError(errConnectionRefused)

		repo := postgres.NewUserRepository(mock)

		got, err := repo.GetBy(ctx, user.UserName)
		assert.Nil(t, got)
		require.ErrorIs(t, err, errConnectionRefused)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByOr(t *testing.T) {
	ctx := context.Background()
	user := testUser()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, user_name, password_hash, roles").
		WithArgs(user.UserName, user.ID).
		WillReturnRows(userRows(user))

	repo := postgres.NewUserRepository(mock)

	got, err := repo.GetByOr(ctx, user.ID, user.UserName)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Add(t *testing.T) {
	ctx := context.Background()
	user := testUser()

	t.Run("ok", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.UserName, user.PasswordHash, user.Roles).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := postgres.NewUserRepository(mock)

		require.NoError(t, repo.Add(ctx, user))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.UserName, user.PasswordHash, user.Roles).
			WillReturnError(errConnectionRefused)

		repo := postgres.NewUserRepository(mock)

		require.ErrorIs(t, repo.Add(ctx, user), errConnectionRefused)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
