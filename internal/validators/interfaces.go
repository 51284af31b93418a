// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request payloads.
//
// Validation runs before any storage access. Every failure is reported as a
// [*ValidationError] listing the offending fields by their JSON names, so
// that transport layers can render them without knowing the rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate checks every tagged field of the provided input.
	Validate(context.Context, any) error
}
