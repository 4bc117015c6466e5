/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filters

// Validator is implemented by composite filter types. Validate checks the
// filter's cross-field invariants and is expected to compose the rule
// functions in this package for the fields the type declares.
type Validator interface {
	Validate() error
}

// New runs construction-time validation on a freshly built filter and
// returns it unchanged. Filters are value objects: once New has accepted
// one it is treated as immutable.
func New[T Validator](f T) (T, error) {
	if err := f.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return f, nil
}
