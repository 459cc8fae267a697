// Package domain contains the core types for compile-argument resolution.
package domain

import "strings"

// ArgumentSet is an ordered list of compiler flags. Order is significant:
// later -I/-D entries shadow earlier ones, and the downstream parser expects
// the flags in the order the build tool emitted them.
type ArgumentSet []string

// Clone returns an independent copy of the argument set. Cached sets own
// their backing array, so callers always receive a copy.
func (a ArgumentSet) Clone() ArgumentSet {
	if len(a) == 0 {
		return nil
	}
	out := make(ArgumentSet, len(a))
	copy(out, a)
	return out
}

// Append returns a new set with the given flags appended.
func (a ArgumentSet) Append(flags ...string) ArgumentSet {
	out := make(ArgumentSet, 0, len(a)+len(flags))
	out = append(out, a...)
	out = append(out, flags...)
	return out
}

// StdFlag returns the first -std= flag in the set, or "" if none is present.
func (a ArgumentSet) StdFlag() string {
	for _, arg := range a {
		if strings.HasPrefix(arg, "-std=") {
			return arg
		}
	}
	return ""
}

// Empty reports whether the set contains no flags.
func (a ArgumentSet) Empty() bool {
	return len(a) == 0
}
