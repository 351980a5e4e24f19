// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a single managed user account.
// It is both the persistence model of the in-memory store and the
// JSON body of the /user endpoints.
type User struct {
	// ID is the unique identifier of the user.
	// It is assigned by the store on creation and never changes afterwards;
	// any caller-supplied value is ignored on create.
	ID int `json:"id"`

	// Username is the unique login name of the user.
	// Must be 3-30 characters long and contain only letters and digits.
	// Uniqueness is enforced case-insensitively across all users.
	Username string `json:"username"`

	// Email is the contact address of the user.
	// Must be at most 254 characters and syntactically valid.
	// Uniqueness is enforced case-insensitively across all users.
	Email string `json:"email"`
}
