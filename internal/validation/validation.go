// Package validation provides input validation utilities. Checks are
// collected into a Violations set so a request reports every failing field
// at once, before any mutation happens.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"devlink/internal/models"
)

const minPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Violations accumulates field-level validation failures.
type Violations struct {
	fields []models.FieldError
}

// Add records a violation for the named field.
func (v *Violations) Add(param, msg string) {
	v.fields = append(v.fields, models.FieldError{Msg: msg, Param: param})
}

// Require records a violation when value is empty or whitespace.
func (v *Violations) Require(param, value, msg string) {
	if strings.TrimSpace(value) == "" {
		v.Add(param, msg)
	}
}

// Email records a violation when value is not a plausible email address.
func (v *Violations) Email(param, value string) {
	if !emailRegex.MatchString(value) || len(value) > 254 {
		v.Add(param, "Please include a valid email")
	}
}

// Password records a violation when value is shorter than the minimum.
func (v *Violations) Password(param, value string) {
	if len(value) < minPasswordLength {
		v.Add(param, fmt.Sprintf("Please enter a password with %d or more characters", minPasswordLength))
	}
}

// Err returns an AppError carrying the full violation set, or nil when
// every check passed.
func (v *Violations) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return models.NewFieldErrors(v.fields)
}
