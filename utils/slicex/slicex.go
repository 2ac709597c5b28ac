// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic search helpers over slices.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-12 v0.2.0: Reduced to the search helpers used by textkit

package slicex

// ===============================
// Search and Validation Functions
// ===============================

// Contains checks if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// Find returns the first element matching the predicate
func Find[T any](slice []T, predicate func(T) bool) (T, bool) {
	if predicate != nil {
		for _, item := range slice {
			if predicate(item) {
				return item, true
			}
		}
	}
	var zero T
	return zero, false
}
