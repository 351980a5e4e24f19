package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-management/internal/config"
	"github.com/MKhiriev/go-user-management/internal/logger"
	"github.com/MKhiriev/go-user-management/internal/utils"
	"github.com/MKhiriev/go-user-management/models"
)

// authService is the concrete implementation of AuthService.
// It verifies the single configured credential pair and handles the JWT
// token lifecycle.
type authService struct {
	// adminUsername/adminPassword form the only credential pair accepted by
	// Login. There is no user database behind authentication.
	adminUsername string
	adminPassword string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is embedded in every issued JWT as both the "iss" and
	// "aud" claims; tokens not matching it are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login verifies the supplied credentials against the configured pair.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrWrongCredentials on any mismatch. The error carries no detail about
//     which part failed.
func (a *authService) Login(ctx context.Context, login models.LoginRequest) error {
	log := logger.FromContext(ctx)

	if login.Username == "" || login.Password == "" {
		log.Error().Str("username", login.Username).Msg("invalid login data provided")
		return ErrInvalidDataProvided
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(login.Username), []byte(a.adminUsername)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(login.Password), []byte(a.adminPassword)) == 1
	if !usernameMatch || !passwordMatch {
		log.Debug().Str("username", login.Username).Msg("login rejected")
		return ErrWrongCredentials
	}

	log.Debug().Str("username", login.Username).Msg("login successful")

	return nil
}

// CreateToken issues a signed JWT for the given account name.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" and "aud" claims, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer/audience claims with zero expiry leeway. Any validation
// failure (expired, wrong issuer or audience, malformed, bad signature) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors — and cannot leak them to clients.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
