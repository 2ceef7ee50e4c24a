// Package strings provides string helpers for nullable (*string) input.
package strings

import (
	"strings"
)

// IsEmpty reports whether s is nil or the empty string.
func IsEmpty(s *string) bool {
	return s == nil || *s == ""
}

// IsBlank reports whether s is nil, empty, or whitespace only.
//
// Example:
//
//	IsBlank(nil)          // true
//	IsBlank(Ptr(" \t "))  // true
//	IsBlank(Ptr(" a "))   // false
func IsBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// Ptr returns a pointer to a copy of s.
func Ptr(s string) *string {
	return &s
}

// Clone copies the pointed-to value so callers cannot mutate stored state
// through a pointer they handed in or received.
func Clone(s *string) *string {
	if s == nil {
		return nil
	}
	return Ptr(*s)
}

// Lower returns a lower-cased copy, preserving nil.
func Lower(s *string) *string {
	if s == nil {
		return nil
	}
	return Ptr(strings.ToLower(*s))
}
