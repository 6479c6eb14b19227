package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

// ValidEmail validates that a string is a single parseable email address
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			trimmed := strings.TrimSpace(value)
			if trimmed == "" {
				return false
			}

			addr, err := mail.ParseAddress(trimmed)
			if err != nil {
				return false
			}

			// Reject the "Name <a@b.com>" form; only the bare address is valid input
			return addr.Address == trimmed
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// ValidURL validates that a string is an absolute http(s) URL
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			u, err := url.Parse(strings.TrimSpace(value))
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid http(s) URL",
		},
	}
}
