// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// A Validator accepts any supported value and, optionally, a list of field
// names restricting the check to those fields. Struct rules are declared as
// `validate` tags on the models and enforced with go-playground/validator.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates value, restricted to fields when any are given.
	Validate(ctx context.Context, value any, fields ...string) error
}
