/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filters

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/dispatch/errors"
)

// Set reports whether an operator field carries a value. Nil pointers,
// slices, maps, and interfaces are unset; everything else, including an
// empty non-nil slice, is set.
func Set(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return !rv.IsNil()
	}
	return true
}

// RequireOperator fails unless at least one of the named operator fields is
// set. The map holds field name to field value for every operator the
// filter recognizes.
func RequireOperator(filter string, operators map[string]any) error {
	for _, v := range operators {
		if Set(v) {
			return nil
		}
	}
	return errors.NewValidationError(filter, "must have at least one operator with arguments")
}

// Exclusive rejects combining an inclusion operator with an is-null flag.
// An empty inclusion list still counts as set.
func Exclusive(filter, opField string, op any, isNullField string, isNull *bool) error {
	if Set(op) && isNull != nil {
		return errors.NewValidationError(filter, fmt.Sprintf("cannot provide %s with %s set", opField, isNullField))
	}
	return nil
}

// OrderedRange rejects a before bound strictly earlier than the after
// bound. Equal bounds are allowed, as is either bound on its own.
func OrderedRange(filter, beforeField string, before *strfmt.DateTime, afterField string, after *strfmt.DateTime) error {
	if before == nil || after == nil {
		return nil
	}
	if time.Time(*before).Before(time.Time(*after)) {
		return errors.NewValidationError(filter, fmt.Sprintf("%s must not be earlier than %s", beforeField, afterField))
	}
	return nil
}
