/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/suparena/dispatch"
	"github.com/suparena/dispatch/errors"
)

// Codec encodes and decodes values of one base abstraction B as tagged
// envelopes, resolving the concrete type for each value through a dispatch
// registry. B is usually an interface implemented by every registered
// concrete type.
type Codec[B any] struct {
	registry *dispatch.Registry
}

// New creates a Codec resolving types against the given registry.
func New[B any](r *dispatch.Registry) *Codec[B] {
	return &Codec[B]{registry: r}
}

// envelope is the JSON wire form: the dispatch key alongside the payload.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Marshal encodes v as a tagged JSON envelope. The tag is v's dispatch key.
func (c *Codec[B]) Marshal(v B) ([]byte, error) {
	key, err := dispatch.DispatchKey(v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %q payload: %w", key, err)
	}
	return json.Marshal(envelope{Type: key, Data: data})
}

// Unmarshal decodes a tagged JSON envelope, instantiating the concrete type
// registered under the envelope's tag for base abstraction B.
func (c *Codec[B]) Unmarshal(data []byte) (B, error) {
	var zero B
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return zero, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Type == "" {
		return zero, fmt.Errorf("envelope has no type tag: %w", errors.ErrMissingDispatchKey)
	}

	pv, err := c.instance(env.Type)
	if err != nil {
		return zero, err
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, pv.Interface()); err != nil {
			return zero, fmt.Errorf("unmarshal %q payload: %w", env.Type, err)
		}
	}
	return c.assert(pv, env.Type)
}

// instance allocates a fresh value of the type registered under key.
func (c *Codec[B]) instance(key string) (reflect.Value, error) {
	t, err := dispatch.LookupType[B](c.registry, key)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.New(t), nil
}

// assert converts a freshly decoded *T back to B, preferring the pointer
// form so interface bases with pointer-receiver methods work.
func (c *Codec[B]) assert(pv reflect.Value, key string) (B, error) {
	var zero B
	if out, ok := pv.Interface().(B); ok {
		return out, nil
	}
	if out, ok := pv.Elem().Interface().(B); ok {
		return out, nil
	}
	return zero, fmt.Errorf("type %s registered under dispatch key %q does not satisfy %s",
		pv.Elem().Type(), key, dispatch.TypeOf[B]())
}
