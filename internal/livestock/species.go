// Package livestock defines the species catalog and the multiplier rule
// model used by the price generator.
package livestock

import "strings"

// Predicate matches a category name.
type Predicate func(category string) bool

// Rule pairs a predicate with a price multiplier. Rules are evaluated in
// order; the first match wins.
type Rule struct {
	Match      Predicate
	Multiplier float64
}

// Species describes one livestock group: its sale categories and the
// multiplier rules that apply to them. Category and rule order is part of
// the contract: categories are emitted in declaration order, and rules
// from earlier-registered species take precedence over later ones.
type Species struct {
	// Name is the species identifier (e.g. "cattle").
	Name string

	// Description is a human-readable summary.
	Description string

	// Categories are the sale categories in emission order.
	Categories []string

	// Rules are the multiplier rules in evaluation order.
	Rules []Rule
}

// Contains matches categories containing sub.
func Contains(sub string) Predicate {
	return func(category string) bool {
		return strings.Contains(category, sub)
	}
}

// ContainsAny matches categories containing at least one of subs.
func ContainsAny(subs ...string) Predicate {
	return func(category string) bool {
		for _, sub := range subs {
			if strings.Contains(category, sub) {
				return true
			}
		}
		return false
	}
}

// Exact matches the category name exactly.
func Exact(name string) Predicate {
	return func(category string) bool {
		return category == name
	}
}

// AllOf matches when every predicate matches.
func AllOf(preds ...Predicate) Predicate {
	return func(category string) bool {
		for _, p := range preds {
			if !p(category) {
				return false
			}
		}
		return true
	}
}

// AnyOf matches when at least one predicate matches.
func AnyOf(preds ...Predicate) Predicate {
	return func(category string) bool {
		for _, p := range preds {
			if p(category) {
				return true
			}
		}
		return false
	}
}
