// filepath: internal/services/validation.go
package services

import (
	"fmt"
	"regexp"

	"daylog/internal/shared"
)

// Validation patterns carried over from the original request schemas.
var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{2,15}$`)
	passwordRegex = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
	// dd/mm/yyyy
	dateRegex = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/([0-9]{4})$`)
	// HH:MM, 24h
	timeRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5]?[0-9])$`)
)

func validationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", shared.ErrValidation, fmt.Sprintf(format, args...))
}

func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return validationErrorf("username must be 3-16 characters, start with a letter and contain only letters, digits and underscores")
	}
	return nil
}

func validatePassword(password string) error {
	if !passwordRegex.MatchString(password) {
		return validationErrorf("password must be at least 8 characters of letters, digits or @$!%%*?&")
	}
	return nil
}

// ValidateDate checks the dd/mm/yyyy day-date format. Exported because the
// date also arrives as a raw query parameter.
func ValidateDate(date string) error {
	if !dateRegex.MatchString(date) {
		return validationErrorf("date must match dd/mm/yyyy")
	}
	return nil
}

func validateTime(t string) error {
	if !timeRegex.MatchString(t) {
		return validationErrorf("time must match HH:MM")
	}
	return nil
}

func validateChannel(name string, value int) error {
	if value < 0 || value > 255 {
		return validationErrorf("%s must be between 0 and 255", name)
	}
	return nil
}

func validateRate(rate int) error {
	if rate < 0 || rate > 4 {
		return validationErrorf("rate must be between 0 and 4")
	}
	return nil
}

func validateLength(name, value string, min, max int) error {
	if len(value) < min || len(value) > max {
		return validationErrorf("%s must be between %d and %d characters", name, min, max)
	}
	return nil
}
