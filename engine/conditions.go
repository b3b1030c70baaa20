package engine

import (
	"reflect"
	"strings"
)

// Condition names a registered binary predicate.
type Condition string

const (
	Eq       Condition = "eq"
	Neq      Condition = "neq"
	Gt       Condition = "gt"
	Gte      Condition = "gte"
	Contains Condition = "contains"
)

// Predicate reports whether got satisfies the condition against want.
type Predicate func(got, want any) bool

// defaultConditions builds the registry of built-in conditions. The set is
// closed; Engine.Register is the only way to extend it.
func defaultConditions() map[Condition]Predicate {
	return map[Condition]Predicate{
		Eq:  equal,
		Neq: func(got, want any) bool { return !equal(got, want) },
		Gt: func(got, want any) bool {
			c, ok := compare(got, want)
			return ok && c > 0
		},
		Gte: func(got, want any) bool {
			c, ok := compare(got, want)
			return ok && c >= 0
		},
		Contains: contains,
	}
}

// equal is strict equality over JSON-decoded values. Two numbers compare
// numerically regardless of their Go representation; everything else falls
// back to deep equality.
func equal(got, want any) bool {
	if a, ok := toNumber(got); ok {
		b, ok := toNumber(want)
		return ok && a == b
	}
	return reflect.DeepEqual(got, want)
}

// compare orders two values when an ordering exists: numerically for two
// numbers, lexicographically for two strings. Mixed operand types have no
// ordering and report ok=false, so gt/gte evaluate to unsatisfied instead
// of guessing.
func compare(got, want any) (int, bool) {
	if a, ok := toNumber(got); ok {
		b, ok := toNumber(want)
		if !ok {
			return 0, false
		}
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		}
		return 0, true
	}

	if a, ok := got.(string); ok {
		b, ok := want.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(a, b), true
	}

	return 0, false
}

// contains checks membership: substring for string containers, element
// equality for arrays. Non-container values contain nothing.
func contains(got, want any) bool {
	switch c := got.(type) {
	case string:
		s, ok := want.(string)
		return ok && strings.Contains(c, s)
	case []any:
		for _, element := range c {
			if equal(element, want) {
				return true
			}
		}
	}
	return false
}

// toNumber widens the numeric types a JSON decoder or test fixture may
// produce to float64.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
