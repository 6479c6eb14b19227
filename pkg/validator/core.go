package validator

import (
	"fmt"
	"strings"
)

// Rule is a single validation check with the error to report when it fails
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidationError describes one broken rule
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is the collection returned by Apply and ApplyAll
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the names of all fields that failed validation
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, err := range ve {
		fields = append(fields, err.Field)
	}
	return fields
}

// Apply runs the rules and returns nil or a ValidationErrors value.
// All rules are evaluated; failures do not short-circuit.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyAll is an alias of Apply kept for readable call sites that pass a
// whole checklist at once
func ApplyAll(rules ...Rule) error {
	return Apply(rules...)
}
