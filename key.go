/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dispatch

import (
	"reflect"

	"github.com/suparena/dispatch/errors"
)

// keyMethod is the niladic method consulted for a type's dispatch key.
const keyMethod = "DispatchKey"

// DispatchKey resolves the dispatch key for a type or an instance. v may be
// a value, a pointer, or a reflect.Type. The key is read from a DispatchKey
// method taking no arguments and returning a string.
//
// A missing method, or one returning the empty string, yields a
// MissingDispatchKeyError. A DispatchKey method returning a non-string
// value yields a DispatchKeyTypeError.
func DispatchKey(v any) (string, error) {
	return resolveDispatchKey(v, false)
}

// DispatchKeyOrEmpty is like DispatchKey but returns "" with no error when
// the key is missing. A non-string key is still an error.
func DispatchKeyOrEmpty(v any) (string, error) {
	return resolveDispatchKey(v, true)
}

// dispatchKeyOf resolves the key for a registry identity type.
func dispatchKeyOf(t reflect.Type, allowMissing bool) (string, error) {
	return resolveDispatchKey(t, allowMissing)
}

func resolveDispatchKey(v any, allowMissing bool) (string, error) {
	t, m := keyMethodFor(v)

	missing := func() (string, error) {
		if allowMissing {
			return "", nil
		}
		return "", errors.NewMissingDispatchKeyError(typeName(t))
	}

	if !m.IsValid() {
		return missing()
	}

	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		// Not the dispatch key shape; the type does not declare a key.
		return missing()
	}
	if mt.Out(0).Kind() != reflect.String {
		return "", errors.NewDispatchKeyTypeError(typeName(t), mt.Out(0).String())
	}

	key := m.Call(nil)[0].String()
	if key == "" {
		return missing()
	}
	return key, nil
}

// keyMethodFor locates the DispatchKey method for a value, pointer, or
// reflect.Type. Types are instantiated through a fresh pointer so methods
// with either receiver kind are visible; interface types cannot be
// instantiated and report no method.
func keyMethodFor(v any) (reflect.Type, reflect.Value) {
	if t, ok := v.(reflect.Type); ok {
		t = indirect(t)
		if t == nil || t.Kind() == reflect.Interface {
			return t, reflect.Value{}
		}
		return t, reflect.New(t).MethodByName(keyMethod)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, reflect.Value{}
	}
	t := indirect(rv.Type())

	if m := rv.MethodByName(keyMethod); m.IsValid() {
		return t, m
	}

	// A value whose DispatchKey method has a pointer receiver: retry on an
	// addressable copy.
	if rv.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		pv := reflect.New(t)
		pv.Elem().Set(rv)
		return t, pv.MethodByName(keyMethod)
	}
	return t, reflect.Value{}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
