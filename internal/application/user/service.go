// Package user implements account management: signup, credential
// verification, token issuance, and profile administration.
package user

import (
	"context"

	"libris/internal/domain/user"
	"libris/internal/shared/authorization"
	"libris/internal/shared/constants"
	"libris/internal/shared/errors"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens carrying the account identity.
type TokenIssuer interface {
	Generate(userID uint, name string, role authorization.Role, status string) (string, error)
}

// Service wires account storage to hashing and token issuance.
type Service struct {
	users  user.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger logger.Interface
}

func NewService(users user.Repository, hasher PasswordHasher, tokens TokenIssuer, log logger.Interface) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: log.Named("user-service"),
	}
}

// SignupInput carries the fields accepted at registration. Role defaults
// to member when empty.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin librarian member"`
	Photo    string `json:"photo"`
}

// Signup registers an account and issues a token for it so the caller is
// signed in immediately.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*user.User, string, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return nil, "", errors.NewInternalError("failed to process password")
	}

	u := &user.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		Role:     authorization.ParseRole(input.Role),
		Photo:    input.Photo,
		Status:   constants.UserStatusActive,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, "", errors.NewConflictError("email already registered")
		}
		s.logger.Errorw("failed to create user", "email", input.Email, "error", err)
		return nil, "", err
	}

	token, err := s.tokens.Generate(u.ID, u.Name, u.Role, u.Status)
	if err != nil {
		s.logger.Errorw("failed to issue token", "user_id", u.ID, "error", err)
		return nil, "", errors.NewInternalError("failed to issue token")
	}

	s.logger.Infow("user registered", "user_id", u.ID, "role", u.Role)
	return u, token, nil
}

// Login verifies credentials against active accounts and issues a token.
// An unknown email, an inactive account, and a wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := s.users.FindActiveByEmail(ctx, email)
	if err != nil {
		s.logger.Errorw("failed to look up user", "email", email, "error", err)
		return nil, "", err
	}
	if u == nil {
		return nil, "", errors.NewBadRequestError("wrong email or password")
	}

	if err := s.hasher.Verify(password, u.Password); err != nil {
		return nil, "", errors.NewBadRequestError("wrong email or password")
	}

	token, err := s.tokens.Generate(u.ID, u.Name, u.Role, u.Status)
	if err != nil {
		s.logger.Errorw("failed to issue token", "user_id", u.ID, "error", err)
		return nil, "", errors.NewInternalError("failed to issue token")
	}

	u.Password = ""
	s.logger.Infow("user logged in", "user_id", u.ID, "role", u.Role)
	return u, token, nil
}

// Get returns a user profile, or a not-found error.
func (s *Service) Get(ctx context.Context, id uint) (*user.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

// List returns user profiles matching the filter.
func (s *Service) List(ctx context.Context, filter user.Filter) ([]*user.User, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// Update applies profile changes. A password change is hashed before it
// is stored.
func (s *Service) Update(ctx context.Context, id uint, changes user.Update) (*user.User, error) {
	if changes.Password != nil {
		hash, err := s.hasher.Hash(*changes.Password)
		if err != nil {
			s.logger.Errorw("failed to hash password", "user_id", id, "error", err)
			return nil, errors.NewInternalError("failed to process password")
		}
		changes.Password = &hash
	}

	u, err := s.users.UpdateByID(ctx, id, changes)
	if err != nil {
		s.logger.Errorw("failed to update user", "user_id", id, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

// EnsureAdmin creates the bootstrap admin account when no account with
// the given email exists. It is a no-op on every later start.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.users.FindActiveByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	admin := &user.User{
		Name:     "admin",
		Email:    email,
		Password: hash,
		Role:     authorization.RoleAdmin,
		Status:   constants.UserStatusActive,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if errors.IsDuplicateError(err) {
			// lost a race with a concurrent start; the account exists
			return nil
		}
		return err
	}

	s.logger.Infow("admin account created", "email", email)
	return nil
}
