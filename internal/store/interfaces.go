package store

import (
	"context"

	"github.com/MKhiriev/go-user-management/models"
)

// UserRepository is the persistence contract for user accounts.
//
// All methods are safe for concurrent use from multiple in-flight requests.
// The context parameter follows the repository signature convention used
// across the codebase; the in-memory implementation performs no I/O and does
// not observe cancellation.
type UserRepository interface {
	// GetAll returns a snapshot of every stored user.
	GetAll(ctx context.Context) []models.User

	// GetByID returns the user with the given id,
	// or ErrUserNotFound if no such user exists.
	GetByID(ctx context.Context, id int) (models.User, error)

	// Add stores a new user, assigning it a fresh unique id.
	// Any id supplied by the caller is ignored.
	// Returns the stored user with its server-assigned id.
	Add(ctx context.Context, user models.User) (models.User, error)

	// Update overwrites the username and email of the user with the given id.
	// The id of the record never changes.
	// Returns ErrUserNotFound if no such user exists.
	Update(ctx context.Context, id int, user models.User) error

	// Delete removes the user with the given id.
	// Returns ErrUserNotFound if no such user exists.
	Delete(ctx context.Context, id int) error
}
