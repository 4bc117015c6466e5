/*
Package errors defines the semantic error types used throughout the dispatch
library.

Two layers are provided:

Sentinel errors for matching with errors.Is:

	if errors.Is(err, errors.ErrNotFound) {
	    // no type registered under that dispatch key
	}

Typed errors carrying context about the failure:

	err := errors.NewRegistryNotFoundError("FlowFilter", []string{"FlowFilter", "FilterSet"})
	// no registry found for type "FlowFilter" with bases [FlowFilter, FilterSet]

Each typed error implements Is against its sentinel, so wrapped errors still
match:

	wrapped := fmt.Errorf("decode failed: %w", err)
	errors.IsRegistryNotFound(wrapped) // true

The taxonomy:
  - ErrMissingDispatchKey: a type lacks a resolvable, non-empty dispatch key
  - ErrInvalidDispatchKey: a dispatch key resolved to a non-string value
  - ErrRegistryNotFound: no ancestor of a type owns a subregistry
  - ErrNotFound: a dispatch key is absent from an otherwise-found subregistry
  - ErrInvalidFilter: a composite filter violated a cross-field invariant
*/
package errors
