// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidNoteID is returned when the {noteID} path segment is not an
	// integer.
	ErrInvalidNoteID = errors.New("note id is not an integer")

	// ErrNoUserInContext is returned by note handlers reached without
	// passing the auth middleware.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrPanicRecovered wraps a value recovered from a panicking handler.
	ErrPanicRecovered = errors.New("panic recovered")
)
