package models

// LoginResponse is the success body of POST /login.
type LoginResponse struct {
	// Message is a fixed human-readable confirmation.
	Message string `json:"message"`

	// Token is the compact signed JWT to present in the
	// Authorization header of subsequent requests.
	Token string `json:"token"`
}

// UserActionResponse is the success body of PUT /user/{id} and
// DELETE /user/{id}. It confirms the action and echoes the affected id.
type UserActionResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// ErrorResponse is the uniform JSON error body used by middleware and
// handlers. Every error the service exposes to a client has this shape.
type ErrorResponse struct {
	Error string `json:"error"`
}
