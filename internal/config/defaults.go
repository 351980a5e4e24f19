package config

import "time"

// Built-in defaults applied after all external sources have been merged.
// They reproduce the constants of the original deployment so that the binary
// is runnable with zero configuration; any production deployment should
// override at least the sign key and credentials.
const (
	DefaultTokenSignKey  = "super_secret_jwt_key_12345_67890_abcde"
	DefaultTokenIssuer   = "UserManagementApi"
	DefaultTokenDuration = time.Hour

	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "password"

	DefaultHTTPAddress       = ":8080"
	DefaultReadHeaderTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  DefaultTokenSignKey,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			AdminUsername: DefaultAdminUsername,
			AdminPassword: DefaultAdminPassword,
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}
