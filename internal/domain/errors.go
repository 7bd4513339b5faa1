// Package domain contains the core business entities and rules.
// These types have no knowledge of databases, HTTP, or any infrastructure
// concerns.
package domain

import "errors"

// Errors for common domain-level failures. Storage implementations translate
// driver errors into these; services treat anything else as unexpected.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// rule is one entry of an entity's ordered validation rule list.
// All rules run on every Validate call so multiple violations are reported
// together, in declaration order.
type rule struct {
	ok      func() bool
	message string
}

func runRules(rules []rule) []string {
	var violations []string
	for _, r := range rules {
		if !r.ok() {
			violations = append(violations, r.message)
		}
	}
	return violations
}
