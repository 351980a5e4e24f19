package models

// LoginRequest is the JSON body of the POST /login endpoint.
type LoginRequest struct {
	// Username is the account name to authenticate as.
	Username string `json:"username"`

	// Password is the plaintext password matched against the configured
	// credential pair. It is never logged or stored.
	Password string `json:"password"`
}
