/*
Package dispatch resolves short string keys to concrete Go types at runtime,
supporting polymorphic serialization: pick the concrete type for a record
based on a tag field.

A base abstraction owns a subregistry of dispatch key to concrete type.
Concrete types declare their key through a DispatchKey method and are
registered under the nearest registered ancestor, found by walking the
type's embedded fields and, failing that, registered interface bases.

Basic usage:

	type Filter interface {
	    DispatchKey() string
	}

	type TagsFilter struct {
	    All    []string `json:"all,omitempty"`
	    IsNull *bool    `json:"isNull,omitempty"`
	}

	func (TagsFilter) DispatchKey() string { return "tags" }

	func init() {
	    dispatch.MustRegisterBaseType[Filter](dispatch.Default)
	    dispatch.MustRegisterType[TagsFilter](dispatch.Default)
	}

	key, _ := dispatch.DispatchKey(TagsFilter{})        // "tags"
	t, _ := dispatch.LookupType[Filter](dispatch.Default, key) // TagsFilter

Subpackages:
  - errors: semantic error types shared across the library
  - filters: construction-time validation rules for composite filter objects
  - codec: tagged-envelope encoding over JSON, YAML, and DynamoDB attribute maps

Registration typically happens in init functions, before any concurrent
reads; the registry nevertheless guards registration with a read-write lock
so late registration is safe.
*/
package dispatch
