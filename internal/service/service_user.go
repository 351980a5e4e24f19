package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-management/internal/logger"
	"github.com/MKhiriev/go-user-management/internal/store"
	"github.com/MKhiriev/go-user-management/internal/validators"
	"github.com/MKhiriev/go-user-management/models"
)

// userService is the concrete implementation of UserService. It orchestrates
// the validator and the user repository: every mutating operation validates
// its candidate before the store is touched.
//
// The validate-then-write sequence is not transactional: a concurrent write
// landing between the uniqueness check and the store mutation can bypass the
// uniqueness invariant. This window is accepted as a known limitation;
// last writer wins.
type userService struct {
	users     store.UserRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository.
// The uniqueness rules of the validator read the same repository.
func NewUserService(users store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		users:     users,
		validator: validators.NewUserValidator(users),
		logger:    logger,
	}
}

// GetAll returns a snapshot of every stored user.
func (s *userService) GetAll(ctx context.Context) []models.User {
	return s.users.GetAll(ctx)
}

// GetByID returns the user with the given id or store.ErrUserNotFound.
func (s *userService) GetByID(ctx context.Context, id int) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create validates the candidate and inserts it under a fresh id.
//
// Returns the stored user, or:
//   - a *validators.ValidationError naming the violated rule;
//   - a wrapped storage error if the insert fails.
func (s *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	// a caller-supplied id must not exempt the candidate from uniqueness
	// checks against any existing record
	user.ID = 0
	if err := s.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("username", user.Username).Msg("user creation rejected by validation")
		return models.User{}, err
	}

	created, err := s.users.Add(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Update overwrites the username and email of an existing user.
//
// The existence check runs before validation so that a request against a
// missing id reports 404-class failure without running validation at all.
// Uniqueness checks exclude the record being updated, so resubmitting the
// user's own username and email is a valid no-op.
//
// Returns:
//   - store.ErrUserNotFound if the id is absent;
//   - a *validators.ValidationError naming the violated rule.
func (s *userService) Update(ctx context.Context, id int, user models.User) error {
	log := logger.FromContext(ctx)

	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}

	user.ID = id
	if err := s.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Int("id", id).Msg("user update rejected by validation")
		return err
	}

	return s.users.Update(ctx, id, user)
}

// Delete removes the user with the given id.
// Returns store.ErrUserNotFound if the id is absent.
func (s *userService) Delete(ctx context.Context, id int) error {
	return s.users.Delete(ctx, id)
}
