// Package validation holds the pure field rules behind the contact and
// checkout forms. Validation runs on every value change; whether an
// error is shown is gated by the field's touched flag.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field names shared by the forms.
const (
	FieldFullName = "fullName"
	FieldSubject  = "subject"
	FieldEmail    = "email"
	FieldMessage  = "message"
	FieldPhone    = "phone"
	FieldAddress  = "address"
)

type (
	// Values maps field name to the raw input value.
	Values map[string]string
	// Errors maps field name to a human-readable problem. A field
	// without an entry is valid.
	Errors map[string]string
	// Touched marks fields that were blurred at least once.
	Touched map[string]bool
)

// RFC-lite: something before the @, and a domain containing a dot.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func minTrimmed(value string, min int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) >= min
}

func digitCount(value string) int {
	count := 0
	for _, r := range value {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

func validEmail(value string) bool {
	return emailRegex.MatchString(strings.TrimSpace(value))
}

func lengthError(label string, min int) string {
	return fmt.Sprintf("%s must be at least %d characters.", label, min)
}

// ValidateContact applies the contact form rules.
func ValidateContact(v Values) Errors {
	e := Errors{}
	if !minTrimmed(v[FieldFullName], 3) {
		e[FieldFullName] = lengthError("Full name", 3)
	}
	if !minTrimmed(v[FieldSubject], 3) {
		e[FieldSubject] = lengthError("Subject", 3)
	}
	if !validEmail(v[FieldEmail]) {
		e[FieldEmail] = "Please enter a valid email address."
	}
	if !minTrimmed(v[FieldMessage], 10) {
		e[FieldMessage] = lengthError("Message", 10)
	}
	return e
}

// ValidateCheckout applies the checkout form rules.
func ValidateCheckout(v Values) Errors {
	e := Errors{}
	if !minTrimmed(v[FieldFullName], 2) {
		e[FieldFullName] = lengthError("Full name", 2)
	}
	if !validEmail(v[FieldEmail]) {
		e[FieldEmail] = "Please enter a valid email address."
	}
	if digitCount(v[FieldPhone]) < 7 {
		e[FieldPhone] = "Phone number must have at least 7 digits."
	}
	if !minTrimmed(v[FieldAddress], 5) {
		e[FieldAddress] = lengthError("Address", 5)
	}
	return e
}
