// intval.go — the representable-integer-range policy.
//
// Core integers are signed 32-bit values. Arithmetic is carried out in int64
// and every intermediate result is checked against this range explicitly, so
// overflow is always detected rather than wrapping. The same policy validates
// integer tokens supplied to `read` at runtime and integer literals in source.
package core

import (
	"math"
	"strconv"
)

// MinCoreInt and MaxCoreInt bound the representable range.
const (
	MinCoreInt = math.MinInt32
	MaxCoreInt = math.MaxInt32
)

// IsValidInRange reports whether v lies within the representable range.
func IsValidInRange(v int64) bool {
	return v >= MinCoreInt && v <= MaxCoreInt
}

// IsWellFormedAndInRange reports whether s is a syntactically valid integer
// (optional leading sign, at least one digit, nothing else) whose value lies
// within the representable range.
func IsWellFormedAndInRange(s string) bool {
	body := s
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		body = body[1:]
	}
	if len(body) == 0 {
		return false
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return false
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// digits only, so the only failure mode is int64 overflow
		return false
	}
	return IsValidInRange(v)
}

// ParseValidated converts a pre-validated string to its integer value.
// Callers must check IsWellFormedAndInRange first; invalid input yields 0.
func ParseValidated(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
