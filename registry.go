/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dispatch

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/dispatch/errors"
)

// Registry maps base abstraction types to subregistries of dispatch key to
// concrete type. Registration is guarded by a read-write mutex; lookups are
// pure reads and safe to call concurrently. Registration is normally done
// once, during package initialization.
type Registry struct {
	mu         sync.RWMutex
	registries map[reflect.Type]map[string]reflect.Type
	bases      []reflect.Type // registered interface bases, in registration order
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		registries: make(map[reflect.Type]map[string]reflect.Type),
	}
}

// Default is the process-wide registry. Libraries that register their
// hierarchies in init functions share it.
var Default = NewRegistry()

// RegisterBaseType ensures a subregistry exists for B, allowing concrete
// types to be registered under it with RegisterType. If B itself resolves a
// non-empty dispatch key, B is inserted into its own subregistry so the base
// can be looked up like any concrete type. Repeated calls for the same base
// are idempotent.
func RegisterBaseType[B any](r *Registry) error {
	base := TypeOf[B]()
	key, err := dispatchKeyOf(base, true)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.registries[base]
	if !ok {
		sub = make(map[string]reflect.Type)
		r.registries[base] = sub
		if base.Kind() == reflect.Interface {
			r.bases = append(r.bases, base)
		}
	}
	if key != "" {
		sub[key] = base
	}
	return nil
}

// RegisterType registers T for dispatch under the nearest registered
// ancestor. The ancestor chain is T itself followed by its embedded types;
// if no chain member owns a subregistry, registered interface bases are
// consulted in registration order. T must resolve a non-empty dispatch key.
//
// Registering a second type under an already-used key replaces the previous
// entry; the last registration wins.
func RegisterType[T any](r *Registry) error {
	t := TypeOf[T]()

	// Resolve the key first so a failed registration leaves the registry untouched.
	key, err := dispatchKeyOf(t, false)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sub := r.subregistry(t)
	if sub == nil {
		return errors.NewRegistryNotFoundError(t.String(), lineageNames(t))
	}
	sub[key] = t
	return nil
}

// MustRegisterBaseType is like RegisterBaseType but panics on error, for use
// in init functions.
func MustRegisterBaseType[B any](r *Registry) {
	if err := RegisterBaseType[B](r); err != nil {
		panic(err)
	}
}

// MustRegisterType is like RegisterType but panics on error, for use in
// init functions.
func MustRegisterType[T any](r *Registry) {
	if err := RegisterType[T](r); err != nil {
		panic(err)
	}
}

// LookupType resolves a dispatch key against the subregistry owned by B or
// the nearest registered ancestor of B.
func LookupType[B any](r *Registry, key string) (reflect.Type, error) {
	return r.Lookup(TypeOf[B](), key)
}

// Lookup is the non-generic form of LookupType.
func (r *Registry) Lookup(base reflect.Type, key string) (reflect.Type, error) {
	base = indirect(base)

	r.mu.RLock()
	defer r.mu.RUnlock()

	sub := r.subregistry(base)
	if sub == nil {
		return nil, errors.NewNotFoundError(base.String(), key)
	}
	t, ok := sub[key]
	if !ok {
		return nil, errors.NewNotFoundError(base.String(), key)
	}
	return t, nil
}

// New constructs a fresh instance of the concrete type registered under key
// for base abstraction B. When B is an interface or pointer type the result
// is a pointer to the concrete type.
func New[B any](r *Registry, key string) (B, error) {
	var zero B
	t, err := LookupType[B](r, key)
	if err != nil {
		return zero, err
	}
	pv := reflect.New(t)
	if out, ok := pv.Interface().(B); ok {
		return out, nil
	}
	if out, ok := pv.Elem().Interface().(B); ok {
		return out, nil
	}
	return zero, fmt.Errorf("type %s registered under dispatch key %q does not satisfy %s", t, key, TypeOf[B]())
}

// subregistry returns the subregistry owned by the first member of t's
// ancestor chain, or by the first registered interface base t implements.
// Callers must hold r.mu.
func (r *Registry) subregistry(t reflect.Type) map[string]reflect.Type {
	for _, ancestor := range lineage(t) {
		if sub, ok := r.registries[ancestor]; ok {
			return sub
		}
	}
	if t.Kind() != reflect.Interface {
		for _, base := range r.bases {
			if t.Implements(base) || reflect.PointerTo(t).Implements(base) {
				return r.registries[base]
			}
		}
	}
	return nil
}

// TypeOf returns the registry identity for T. Pointer types are normalized
// to their element type; interface types keep their own identity.
func TypeOf[T any]() reflect.Type {
	return indirect(reflect.TypeOf((*T)(nil)).Elem())
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
