// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Client-facing error messages. These strings are part of the wire contract:
// clients receive them verbatim in the "error" field of JSON error bodies.
//
// The two unauthorized messages deliberately reveal nothing beyond the coarse
// failure class: "missing or invalid" covers an absent or malformed
// Authorization header, "invalid or expired" covers every token verification
// failure without distinguishing bad signature from expiry.
const (
	MsgUnauthorizedMissingToken = "Unauthorized: Missing or invalid token."
	MsgUnauthorizedInvalidToken = "Unauthorized: Invalid or expired token."
	MsgInternalServerError      = "Internal server error."
	MsgInvalidJSON              = "Invalid JSON was passed"
)
