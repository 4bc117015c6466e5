/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors
var (
	// ErrMissingDispatchKey is returned when a type does not define a dispatch key
	ErrMissingDispatchKey = errors.New("missing dispatch key")

	// ErrInvalidDispatchKey is returned when a resolved dispatch key is not a string
	ErrInvalidDispatchKey = errors.New("invalid dispatch key")

	// ErrRegistryNotFound is returned when no ancestor of a type owns a subregistry
	ErrRegistryNotFound = errors.New("no registry found for type")

	// ErrNotFound is returned when a dispatch key is not present in a subregistry
	ErrNotFound = errors.New("dispatch key not found")

	// ErrInvalidFilter is returned when a composite filter violates a cross-field invariant
	ErrInvalidFilter = errors.New("invalid filter")
)

// MissingDispatchKeyError represents an error when a type lacks a resolvable,
// non-empty dispatch key
type MissingDispatchKeyError struct {
	Type string
}

func (e *MissingDispatchKeyError) Error() string {
	return fmt.Sprintf("type %q does not define a value for its dispatch key which is required for registry lookup", e.Type)
}

func (e *MissingDispatchKeyError) Is(target error) bool {
	return target == ErrMissingDispatchKey
}

// DispatchKeyTypeError represents an error when a resolved dispatch key is not a string
type DispatchKeyTypeError struct {
	Type string
	Got  string
}

func (e *DispatchKeyTypeError) Error() string {
	return fmt.Sprintf("type %q has a dispatch key of type %s but a type of string is required", e.Type, e.Got)
}

func (e *DispatchKeyTypeError) Is(target error) bool {
	return target == ErrInvalidDispatchKey
}

// RegistryNotFoundError represents an error when a type being registered has
// no ancestor with a subregistry
type RegistryNotFoundError struct {
	Type  string
	Bases []string
}

func (e *RegistryNotFoundError) Error() string {
	return fmt.Sprintf("no registry found for type %q with bases [%s]", e.Type, strings.Join(e.Bases, ", "))
}

func (e *RegistryNotFoundError) Is(target error) bool {
	return target == ErrRegistryNotFound
}

// NotFoundError represents a failed dispatch key lookup
type NotFoundError struct {
	Base string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no type found in registry for %q with dispatch key %q", e.Base, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a composite filter invariant violation
type ValidationError struct {
	Filter  string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Filter != "" {
		return fmt.Sprintf("filter %q: %s", e.Filter, e.Message)
	}
	return fmt.Sprintf("filter validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidFilter
}

// Helper functions for creating errors

// NewMissingDispatchKeyError creates a new MissingDispatchKeyError
func NewMissingDispatchKeyError(typeName string) error {
	return &MissingDispatchKeyError{Type: typeName}
}

// NewDispatchKeyTypeError creates a new DispatchKeyTypeError
func NewDispatchKeyTypeError(typeName, got string) error {
	return &DispatchKeyTypeError{Type: typeName, Got: got}
}

// NewRegistryNotFoundError creates a new RegistryNotFoundError
func NewRegistryNotFoundError(typeName string, bases []string) error {
	return &RegistryNotFoundError{Type: typeName, Bases: bases}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(base, key string) error {
	return &NotFoundError{Base: base, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(filter, message string) error {
	return &ValidationError{Filter: filter, Message: message}
}

// IsMissingDispatchKey checks if an error is a missing dispatch key error
func IsMissingDispatchKey(err error) bool {
	return errors.Is(err, ErrMissingDispatchKey)
}

// IsInvalidDispatchKey checks if an error is a dispatch key type error
func IsInvalidDispatchKey(err error) bool {
	return errors.Is(err, ErrInvalidDispatchKey)
}

// IsRegistryNotFound checks if an error is a registry not found error
func IsRegistryNotFound(err error) bool {
	return errors.Is(err, ErrRegistryNotFound)
}

// IsNotFound checks if an error is a lookup error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a filter validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidFilter)
}
