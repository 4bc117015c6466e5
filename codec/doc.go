/*
Package codec serializes polymorphic values as tagged envelopes.

A Codec is scoped to one base abstraction and a dispatch registry. On
encode it resolves the value's dispatch key and emits it alongside the
payload; on decode it looks the tag up in the registry, instantiates the
concrete type, and unmarshals the payload into it.

Three wire forms share the same resolution logic:

JSON and YAML documents:

	{"type": "tags", "data": {"all": ["prod"]}}

	type: tags
	data:
	    all: [prod]

DynamoDB attribute maps, with the dispatch key stored in an EntityType
attribute so heterogeneous items in a single table round-trip to their
concrete Go types:

	c := codec.New[Filter](dispatch.Default)
	item, _ := c.MarshalItem(TagsFilter{All: []string{"prod"}})
	f, _ := c.UnmarshalItem(item) // TagsFilter

Unknown tags surface the registry's lookup error; envelopes without a tag
fail with errors.ErrMissingDispatchKey.
*/
package codec
