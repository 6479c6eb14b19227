package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerceai/commerceai-go/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil when every rule passes", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Widget"),
			validator.MaxLen("name", "Widget", 255),
		)
		assert.NoError(t, err)
	})

	t.Run("collects all failures without short-circuiting", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", ""),
			validator.ValidEmail("email", "not-an-email"),
			validator.MinLen("code", "ab", 4),
		)
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 3)
		assert.ElementsMatch(t, []string{"name", "email", "code"}, verrs.Fields())
	})

	t.Run("error message names field and reason", func(t *testing.T) {
		err := validator.Apply(validator.Required("full_name", "  "))
		assert.EqualError(t, err, "validation failed: full_name: field is required")
	})
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rule validator.Rule
		ok   bool
	}{
		{"required passes", validator.Required("f", "x"), true},
		{"required rejects whitespace", validator.Required("f", " \t"), false},
		{"min len counts runes not bytes", validator.MinLen("f", "héllo", 5), true},
		{"min len too short", validator.MinLen("f", "ab", 3), false},
		{"max len at boundary", validator.MaxLen("f", "abc", 3), true},
		{"max len too long", validator.MaxLen("f", "abcd", 3), false},
		{"one of member", validator.OneOf("f", "shopify", "shopify", "woocommerce"), true},
		{"one of non-member", validator.OneOf("f", "magento", "shopify", "woocommerce"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.rule.Check())
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		ok    bool
	}{
		{"user@example.com", true},
		{"user+tag@example.co.uk", true},
		{"  user@example.com  ", true},
		{"", false},
		{"not-an-email", false},
		{"@example.com", false},
		// display-name form is not acceptable login input
		{"User <user@example.com>", false},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.ok, validator.ValidEmail("email", tc.value).Check())
		})
	}
}

func TestValidURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		ok    bool
	}{
		{"https://shop.example.com", true},
		{"http://localhost:8000/api/v1", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"https://", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.ok, validator.ValidURL("url", tc.value).Check())
		})
	}
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"mixed case and digits", "Passw0rd", true},
		{"lowercase digits symbol", "hunter-42x", true},
		{"too short", "Pw0!", false},
		{"only lowercase", "aaaaaaaaaa", false},
		{"only two classes", "password12", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, validator.StrongPassword("password", tc.value).Check())
		})
	}
}
