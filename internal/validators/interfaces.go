// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they are sent to the
// backend.
//
// Rules live in `validate` struct tags on the models and are enforced with
// go-playground/validator. Two custom rules are registered: resource_kind and
// bookmark_type, both accepting paper, note or syllabus.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
