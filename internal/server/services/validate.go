package services

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

// FieldViolation describes one failed validation rule.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates all violations found in an input, so clients
// see every problem at once instead of one per round trip.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// newFieldError wraps a single violation, for checks made after the
// field-rule pass (e.g. referral resolution).
func newFieldError(field, message string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Message: message}}}
}

// validateSignup runs every field rule and returns the full violation list.
func validateSignup(in SignupInput) []FieldViolation {
	var violations []FieldViolation

	if in.FirstName == "" {
		violations = append(violations, FieldViolation{"firstName", "Name is required"})
	} else if len(in.FirstName) < 3 {
		violations = append(violations, FieldViolation{"firstName", "Name must be at least 3 characters long"})
	}

	if in.Email == "" {
		violations = append(violations, FieldViolation{"email", "Email is required"})
	} else if !emailRe.MatchString(in.Email) {
		violations = append(violations, FieldViolation{"email", "Please provide a valid email address"})
	}

	if in.Password == "" {
		violations = append(violations, FieldViolation{"password", "Password is required"})
	} else if len(in.Password) < 6 {
		violations = append(violations, FieldViolation{"password", "Password must be at least 6 characters long"})
	}

	if in.Phone == "" {
		violations = append(violations, FieldViolation{"phone", "Phone is required"})
	} else if !phoneRe.MatchString(in.Phone) {
		violations = append(violations, FieldViolation{"phone", "Please provide a valid 10-digit phone number"})
	}

	if in.Whatsapp != "" && !phoneRe.MatchString(in.Whatsapp) {
		violations = append(violations, FieldViolation{"whatsapp", "Please provide a valid 10-digit phone number"})
	}

	return violations
}
