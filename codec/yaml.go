/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/suparena/dispatch"
	"github.com/suparena/dispatch/errors"
)

// yamlEnvelope defers payload decoding until the concrete type is known.
type yamlEnvelope struct {
	Type string    `yaml:"type"`
	Data yaml.Node `yaml:"data"`
}

// MarshalYAML encodes v as a tagged YAML document.
func (c *Codec[B]) MarshalYAML(v B) ([]byte, error) {
	key, err := dispatch.DispatchKey(v)
	if err != nil {
		return nil, err
	}
	var data yaml.Node
	if err := data.Encode(v); err != nil {
		return nil, fmt.Errorf("marshal %q payload: %w", key, err)
	}
	return yaml.Marshal(yamlEnvelope{Type: key, Data: data})
}

// UnmarshalYAML decodes a tagged YAML document into the concrete type
// registered under its type tag.
func (c *Codec[B]) UnmarshalYAML(data []byte) (B, error) {
	var zero B
	var env yamlEnvelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return zero, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Type == "" {
		return zero, fmt.Errorf("envelope has no type tag: %w", errors.ErrMissingDispatchKey)
	}

	pv, err := c.instance(env.Type)
	if err != nil {
		return zero, err
	}
	if !env.Data.IsZero() {
		if err := env.Data.Decode(pv.Interface()); err != nil {
			return zero, fmt.Errorf("unmarshal %q payload: %w", env.Type, err)
		}
	}
	return c.assert(pv, env.Type)
}
