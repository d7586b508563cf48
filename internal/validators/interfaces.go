// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules for accounts: email, password
// and username predicates plus a Validator for request payloads.
//
// The predicates are total functions over strings with no side effects.
// Validator implementations are injected into services so transport code
// never encodes business rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
