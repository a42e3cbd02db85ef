// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// A Validator dispatches on the concrete type of the value and may be
// restricted to a subset of named fields. Checks run in a fixed order and the
// first failing one is returned, so callers get one error per request.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
