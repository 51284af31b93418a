// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// notes API handlers and its client.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Clients match none of them; they rely on status codes.
package app

const (
	// MsgAPIRunning is the body of GET /.
	MsgAPIRunning = "Notes CRUD API is running"

	// MsgUserCreated accompanies the id of a newly registered user.
	MsgUserCreated = "User created successfully"

	// MsgNoteDeleted confirms a hard delete.
	MsgNoteDeleted = "Note deleted successfully"
)

// Health endpoint statuses and messages.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	MsgAPIOperational      = "API is operational"
	MsgDatabaseUnreachable = "Database is unreachable"
)

// Error details, written into the "detail" field of error responses.
const (
	MsgValidation = "Validation error"

	// MsgUsernameAlreadyExists is returned when registration hits a taken
	// username.
	MsgUsernameAlreadyExists = "Username already exists"

	// MsgNoteNotFound covers both missing notes and notes owned by someone
	// else.
	MsgNoteNotFound = "Note not found"

	// MsgVersionConflict is returned when the version sent with an update is
	// no longer the stored one. The client should fetch the note again before
	// retrying.
	MsgVersionConflict = "Note was modified by another process. Please refresh and try again."

	MsgIncorrectUsernameOrPassword = "Incorrect username or password"

	// MsgCouldNotValidateCredentials is returned for malformed, expired or
	// forged tokens and for tokens of deleted users.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgNotAuthenticated is returned when the Authorization header is absent.
	MsgNotAuthenticated = "Not authenticated"

	MsgDatabaseError       = "Database error occurred"
	MsgInternalServerError = "Internal server error"
	MsgNotFound            = "Not Found"
	MsgMethodNotAllowed    = "Method Not Allowed"
	MsgRequestBodyTooLarge = "Request body too large"
)
