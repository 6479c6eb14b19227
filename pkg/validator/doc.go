// Package validator provides small composable validation rules for the
// inputs the SDK sends to the backend: credentials, registration payloads
// and resource create requests. Rules are plain values combined with Apply
// or ApplyAll, so call sites read as a checklist:
//
//	err := validator.ApplyAll(
//	    validator.ValidEmail("email", email),
//	    validator.Required("password", password),
//	)
//
// A failed run returns ValidationErrors, one entry per broken rule, each
// carrying the field name and a user-displayable message.
package validator
