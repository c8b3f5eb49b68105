// Package optional provides a tiny tagged-optional for the integer sentinel
// values (dfs numbers, hi values, equivalence classes, vertex indices) that
// flow through the bidirected/spantree/cycleequiv packages. It exists so an
// "unset" state is a type-level fact instead of a magic integer such as -1
// or math.MaxInt, which a caller could otherwise mistake for a real value.
package optional

// Int is an optional int: either absent, or present holding a value.
// The zero value of Int is absent.
type Int struct {
	value int
	set   bool
}

// None returns an absent Int.
func None() Int { return Int{} }

// Some returns a present Int holding v.
func Some(v int) Int { return Int{value: v, set: true} }

// Get returns the held value and true if present, or (0, false) if absent.
func (o Int) Get() (int, bool) { return o.value, o.set }

// IsSet reports whether o holds a value.
func (o Int) IsSet() bool { return o.set }

// MustGet returns the held value, panicking if o is absent.
// Callers use this only where presence was already checked by IsSet or by
// the caller's own invariant (e.g. a non-root vertex always has a parent).
func (o Int) MustGet() int {
	if !o.set {
		panic("optional: MustGet on absent Int")
	}
	return o.value
}

// OrElse returns the held value, or fallback if absent.
func (o Int) OrElse(fallback int) int {
	if o.set {
		return o.value
	}
	return fallback
}
