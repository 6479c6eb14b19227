package validator

import "unicode"

// minPasswordLen matches the backend's registration policy
const minPasswordLen = 8

// StrongPassword validates that a password is long enough and mixes at least
// three of: lowercase, uppercase, digits, punctuation/symbols. Applied on
// registration only; login accepts whatever the account was created with.
func StrongPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < minPasswordLen {
				return false
			}

			var lower, upper, digit, special bool
			for _, r := range value {
				switch {
				case unicode.IsLower(r):
					lower = true
				case unicode.IsUpper(r):
					upper = true
				case unicode.IsDigit(r):
					digit = true
				case unicode.IsPunct(r) || unicode.IsSymbol(r):
					special = true
				}
			}

			classes := 0
			for _, ok := range []bool{lower, upper, digit, special} {
				if ok {
					classes++
				}
			}
			return classes >= 3
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be at least 8 characters and mix letter cases, digits or symbols",
		},
	}
}
