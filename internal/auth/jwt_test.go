package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfranca/storefront/internal/auth"
	"github.com/dfranca/storefront/internal/domain"
)

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{
		SecretKey: "test-secret-key",
		Issuer:    "storefront-auth",
		Audience:  "storefront",
		TokenTTL:  15 * time.Minute,
	}
}

func TestJWTHandler_GenerateAndParse(t *testing.T) {
	handler := auth.NewJWTHandler(testJWTConfig())

	token := handler.Generate(domain.UserModel{
		ID:       uuid.New(),
		UserName: "bob",
		Roles:    "Admin,User",
	})
	require.NotEmpty(t, token)

	claims, err := handler.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, []string{"Admin", "User"}, claims.Roles)
	assert.Equal(t, "storefront-auth", claims.Issuer)
	require.Len(t, claims.Audience, 1)
	assert.Equal(t, "storefront", claims.Audience[0])
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTHandler_GenerateNormalizesRoles(t *testing.T) {
	handler := auth.NewJWTHandler(testJWTConfig())

	tests := []struct {
		roles string
		want  []string
	}{
		{"Admin", []string{"Admin"}},
		{"admin", []string{"Admin"}},
		{"ADMIN, user", []string{"Admin", "User"}},
		{"Editor", []string{"User"}},
		{"Admin,Editor,User", []string{"Admin", "User", "User"}},
	}

	for _, tc := range tests {
		t.Run(tc.roles, func(t *testing.T) {
			token := handler.Generate(domain.UserModel{UserName: "x", Roles: tc.roles})
			require.NotEmpty(t, token)

			claims, err := handler.Parse(token)
			require.NoError(t, err)
			assert.Equal(t, tc.want, claims.Roles)
		})
	}
}

func TestJWTHandler_GenerateWithoutSecretReturnsEmpty(t *testing.T) {
	cfg := testJWTConfig()
	cfg.SecretKey = ""
	handler := auth.NewJWTHandler(cfg)

	assert.Empty(t, handler.Generate(domain.UserModel{UserName: "bob", Roles: "User"}))
}

func TestJWTHandler_ParseRejectsForeignSignature(t *testing.T) {
	issued := auth.NewJWTHandler(testJWTConfig())
	token := issued.Generate(domain.UserModel{UserName: "bob", Roles: "User"})
	require.NotEmpty(t, token)

	other := auth.NewJWTHandler(auth.JWTConfig{SecretKey: "different-key", TokenTTL: time.Minute})
	_, err := other.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTHandler_ParseRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenTTL = -time.Minute
	handler := auth.NewJWTHandler(cfg)

	token := handler.Generate(domain.UserModel{UserName: "bob", Roles: "User"})
	require.NotEmpty(t, token)

	_, err := handler.Parse(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}
