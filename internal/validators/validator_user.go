package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-user-management/internal/store"
	"github.com/MKhiriev/go-user-management/models"
)

// Named validation fields accepted by [UserValidator.Validate].
const (
	FieldUsername       = "username"
	FieldEmail          = "email"
	FieldUsernameUnique = "username_unique"
	FieldEmailUnique    = "email_unique"
)

// usernamePattern restricts usernames to ASCII letters and digits.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// UserValidator validates [models.User] records against format rules and
// against the current contents of the user store for uniqueness.
//
// Rules are evaluated in a fixed order and the first violation wins, so a
// record failing several rules always reports the same error:
//  1. username format (required, 3-30 chars, alphanumeric)
//  2. email format (required, at most 254 chars, valid address syntax)
//  3. username uniqueness (case-insensitive, excluding the record itself)
//  4. email uniqueness (case-insensitive, excluding the record itself)
//
// Uniqueness checks read the live store and are therefore best-effort under
// concurrency: a concurrent write landing between validation and the store
// mutation can invalidate the check. Acceptable at this system's scale;
// last writer wins.
type UserValidator struct {
	users store.UserRepository
}

// NewUserValidator constructs a [Validator] for user records backed by the
// given repository for uniqueness lookups.
func NewUserValidator(users store.UserRepository) Validator {
	return &UserValidator{users: users}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldUsernameUnique, FieldEmailUnique}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsernameFormat(user.Username); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmailFormat(user.Email); err != nil {
				return err
			}
		case FieldUsernameUnique:
			if v.isUsernameTaken(ctx, user) {
				return ErrUsernameTaken
			}
		case FieldEmailUnique:
			if v.isEmailTaken(ctx, user) {
				return ErrEmailTaken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsernameFormat(username string) error {
	if strings.TrimSpace(username) == "" || len(username) < 3 || len(username) > 30 || !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}

	return nil
}

func validateEmailFormat(email string) error {
	if strings.TrimSpace(email) == "" || len(email) > 254 {
		return ErrInvalidEmail
	}

	// mail.ParseAddress accepts forms like `Name <a@b>`; requiring the parsed
	// address to equal the input keeps only the bare local@domain form.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmailFmt
	}

	return nil
}

// isUsernameTaken reports whether a different user (by id) already holds the
// candidate's username, compared case-insensitively.
func (v *UserValidator) isUsernameTaken(ctx context.Context, user models.User) bool {
	for _, existing := range v.users.GetAll(ctx) {
		if existing.ID != user.ID && strings.EqualFold(existing.Username, user.Username) {
			return true
		}
	}

	return false
}

// isEmailTaken reports whether a different user (by id) already holds the
// candidate's email, compared case-insensitively.
func (v *UserValidator) isEmailTaken(ctx context.Context, user models.User) bool {
	for _, existing := range v.users.GetAll(ctx) {
		if existing.ID != user.ID && strings.EqualFold(existing.Email, user.Email) {
			return true
		}
	}

	return false
}
