package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MinLen validates that a string has at least min characters
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// OneOf validates that a string is one of the allowed values
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}

// MaxLen validates that a string has at most max characters
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}
