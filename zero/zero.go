// Package zero resolves the canonical zero value for a type, both at
// compile time through generics and at runtime through reflection.
package zero

// Value returns the zero value of T: nil for pointer, map, slice,
// channel, function and interface types, zero for numeric types, false
// for bool, the empty string for string, and the default-constructed
// (zero-initialized) value for composite types.
func Value[T any]() T {
	var result T
	return result
}

// IsZero reports whether v equals the zero value of its type.
func IsZero[T comparable](v T) bool {
	var result T
	return v == result
}

// Coalesce returns v unless it is the zero value, in which case it
// returns fallback.
func Coalesce[T comparable](v T, fallback T) T {
	var result T
	if v == result {
		return fallback
	}
	return v
}
