package store

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-user-management/internal/logger"
	"github.com/MKhiriev/go-user-management/models"
)

// userRepository is the in-memory implementation of [UserRepository].
// Records live in a mutex-guarded map for the lifetime of the process;
// ids come from an atomic counter so that concurrent Add calls can never
// assign the same id twice.
//
// Values are copied in and out of the map, so callers never share memory
// with the authoritative record and readers never observe a half-written one.
type userRepository struct {
	logger *logger.Logger

	mu    sync.RWMutex
	users map[int]models.User

	// nextID is the id generator. Incremented atomically outside the map
	// lock; the first assigned id is 1.
	nextID atomic.Int64
}

// NewUserRepository constructs an empty in-memory [UserRepository].
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &userRepository{
		logger: logger,
		users:  make(map[int]models.User),
	}
}

// GetAll returns a copy of every stored user. The returned slice is owned by
// the caller; mutating it does not affect the store. No ordering is
// guaranteed.
func (r *userRepository) GetAll(ctx context.Context) []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, user)
	}

	return all
}

// GetByID returns a copy of the user with the given id,
// or [ErrUserNotFound] if the id is absent.
func (r *userRepository) GetByID(ctx context.Context, id int) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// Add inserts user under a freshly generated id and returns the stored record.
// Any caller-supplied id is discarded.
func (r *userRepository) Add(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = int(r.nextID.Add(1))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		log.Error().Int("id", user.ID).Msg("generated id collides with an existing record")
		return models.User{}, ErrUserAlreadyExists
	}
	r.users[user.ID] = user

	return user, nil
}

// Update overwrites the username and email of the record with the given id.
// The record's id is preserved regardless of the id carried by user.
func (r *userRepository) Update(ctx context.Context, id int, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}

	existing.Username = user.Username
	existing.Email = user.Email
	r.users[id] = existing

	return nil
}

// Delete removes the record with the given id.
func (r *userRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}
