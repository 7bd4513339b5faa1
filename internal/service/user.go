// Package service contains the orchestration layer. Each public operation
// follows the same shape: perform reads, apply policy checks, record
// violations and failures in the request's notification collector, and
// perform the one authoritative write only if nothing was recorded. Failures
// never leave a service as errors or panics; callers read the collector to
// decide the outcome.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dfranca/storefront/internal/domain"
	"github.com/dfranca/storefront/internal/event"
	"github.com/dfranca/storefront/internal/notification"
	"github.com/dfranca/storefront/internal/storage"
)

// PasswordHandler hashes and verifies passwords.
type PasswordHandler interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenHandler issues signed access tokens. An empty result means issuance
// failed; no error crosses this boundary.
type TokenHandler interface {
	Generate(user domain.UserModel) string
}

// UserService orchestrates account registration and login.
type UserService struct {
	users     storage.UserRepository
	passwords PasswordHandler
	tokens    TokenHandler
	publisher event.Publisher
	logger    *zap.Logger
}

func NewUserService(
	users storage.UserRepository,
	passwords PasswordHandler,
	tokens TokenHandler,
	publisher event.Publisher,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
	}
}

// Create registers a new account. Duplicates, missing passwords, and
// validation failures are recorded as Expected; storage and hashing failures
// are logged with their cause and recorded only as a generic Unexpected
// message.
func (s *UserService) Create(ctx context.Context, n *notification.Notification, model domain.UserModel) {
	existing, err := s.users.GetByOr(ctx, model.ID, model.UserName)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("failed to add user",
			zap.String("userName", model.UserName), zap.Error(err))
		n.Add(fmt.Sprintf("Failed to add user %s.", model.UserName), notification.Unexpected)
		return
	}
	if existing != nil {
		n.Add(fmt.Sprintf("User %s or Id %s already exists.", model.UserName, model.ID), notification.Expected)
		return
	}

	if model.Password == "" {
		n.Add("Password is required.", notification.Expected)
		return
	}

	user := domain.NewUserFromModel(model)

	hash, err := s.passwords.Hash(model.Password)
	if err != nil {
		s.logger.Error("failed to hash password for user",
			zap.String("userName", model.UserName), zap.Error(err))
		n.Add(fmt.Sprintf("Failed to add user %s.", model.UserName), notification.Unexpected)
		return
	}
	user.SetPasswordHash(hash)

	if violations := user.Validate(); len(violations) > 0 {
		n.AddMessages(violations)
		return
	}

	if err := s.users.Add(ctx, user); err != nil {
		s.logger.Error("failed to add user",
			zap.String("userName", model.UserName), zap.Error(err))
		n.Add(fmt.Sprintf("Failed to add user %s.", model.UserName), notification.Unexpected)
		return
	}

	s.publisher.Publish(ctx, event.New(event.TypeUserRegistered, user.UserName))
}

// Login authenticates the credentials and returns a signed token, or the
// empty string when no token was produced. A failed lookup short-circuits:
// the flow never dereferences an absent record. A wrong password or a failed
// token issuance records the same non-specific rejection; the returned token
// is only exposed by the boundary when the collector stayed clean.
func (s *UserService) Login(ctx context.Context, n *notification.Notification, userName, password string) string {
	user, err := s.users.GetBy(ctx, userName)
	if errors.Is(err, domain.ErrNotFound) {
		n.Add("Invalid UserName/Password.", notification.Expected)
		s.logger.Info("login attempt for unknown user", zap.String("userName", userName))
		return ""
	}
	if err != nil {
		s.logger.Error("failed to login user",
			zap.String("userName", userName), zap.Error(err))
		n.Add(fmt.Sprintf("Failed to Login UserName %s.", userName), notification.Unexpected)
		return ""
	}

	if !s.passwords.Verify(password, user.PasswordHash) {
		n.Add("Invalid UserName/Password.", notification.Expected)
		s.logger.Info("login attempt with invalid password", zap.String("userName", userName))
	}

	token := s.tokens.Generate(user.Model())
	if token == "" {
		n.Add("Invalid UserName/Password.", notification.Expected)
		s.logger.Info("token not created for user", zap.String("userName", userName))
	}

	return token
}
