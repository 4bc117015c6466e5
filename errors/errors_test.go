/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestMissingDispatchKeyError(t *testing.T) {
	err := NewMissingDispatchKeyError("FlowFilter")

	// Test error message
	expected := `type "FlowFilter" does not define a value for its dispatch key which is required for registry lookup`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrMissingDispatchKey) {
		t.Error("MissingDispatchKeyError should match ErrMissingDispatchKey")
	}

	// Test helper function
	if !IsMissingDispatchKey(err) {
		t.Error("IsMissingDispatchKey should return true for MissingDispatchKeyError")
	}
}

func TestDispatchKeyTypeError(t *testing.T) {
	err := NewDispatchKeyTypeError("FlowFilter", "int")

	// Test error message
	expected := `type "FlowFilter" has a dispatch key of type int but a type of string is required`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrInvalidDispatchKey) {
		t.Error("DispatchKeyTypeError should match ErrInvalidDispatchKey")
	}

	// Test helper function
	if !IsInvalidDispatchKey(err) {
		t.Error("IsInvalidDispatchKey should return true for DispatchKeyTypeError")
	}
}

func TestRegistryNotFoundError(t *testing.T) {
	err := NewRegistryNotFoundError("TagsFilter", []string{"TagsFilter", "FilterSet"})

	// Test error message
	expected := `no registry found for type "TagsFilter" with bases [TagsFilter, FilterSet]`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrRegistryNotFound) {
		t.Error("RegistryNotFoundError should match ErrRegistryNotFound")
	}

	// Test helper function
	if !IsRegistryNotFound(err) {
		t.Error("IsRegistryNotFound should return true for RegistryNotFoundError")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Filter", "tags")

	// Test error message
	expected := `no type found in registry for "Filter" with dispatch key "tags"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		filter   string
		message  string
		expected string
	}{
		{
			name:     "with filter name",
			filter:   "StartTimeFilter",
			message:  "Before must not be earlier than After",
			expected: `filter "StartTimeFilter": Before must not be earlier than After`,
		},
		{
			name:     "without filter name",
			filter:   "",
			message:  "must have at least one operator with arguments",
			expected: "filter validation failed: must have at least one operator with arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.filter, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidFilter) {
				t.Error("ValidationError should match ErrInvalidFilter")
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewNotFoundError("Filter", "tags")
	wrapped := fmt.Errorf("decode failed: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrMissingDispatchKey,
		ErrInvalidDispatchKey,
		ErrRegistryNotFound,
		ErrNotFound,
		ErrInvalidFilter,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
