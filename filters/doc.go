/*
Package filters provides construction-time validation for composite filter
objects: value objects with several optional constraint fields that are only
valid when the constraints are jointly well-formed.

Three rules are provided, and each concrete filter type opts into exactly
the rules for the fields it declares:

  - RequireOperator: at least one recognized operator field must be set
  - Exclusive: an inclusion operator (an all-of or any-of list) must not be
    combined with an is-null flag, even when the list is empty
  - OrderedRange: a before/after timestamp pair must not have before
    strictly earlier than after; equal bounds are fine

A filter composes its rules in a Validate method and is constructed through
New, which rejects invalid combinations before the value escapes:

	type StartTimeFilter struct {
	    Before *strfmt.DateTime `json:"before,omitempty"`
	    After  *strfmt.DateTime `json:"after,omitempty"`
	}

	func (f StartTimeFilter) Validate() error {
	    if err := filters.RequireOperator("StartTimeFilter", map[string]any{
	        "Before": f.Before,
	        "After":  f.After,
	    }); err != nil {
	        return err
	    }
	    return filters.OrderedRange("StartTimeFilter", "Before", f.Before, "After", f.After)
	}

	f, err := filters.New(StartTimeFilter{Before: &t})

Violations surface as errors.ValidationError naming the concrete filter
type and the violated rule.
*/
package filters
