package utils

import (
	"fmt"
	"regexp"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}

// ValidateAmount validates an invoice amount
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("amount must be non-negative: %.2f", amount)
	}
	return nil
}

// ValidateWarrantyPeriod validates a warranty period in months
func ValidateWarrantyPeriod(months int) error {
	if months < 0 || months > 120 {
		return fmt.Errorf("warranty period must be between 0 and 120 months: %d", months)
	}
	return nil
}

// ParseDate parses a calendar date in YYYY-MM-DD form
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// SanitizeString removes control characters
func SanitizeString(s string) string {
	return regexp.MustCompile(`[\x00-\x1f\x7f]`).ReplaceAllString(s, "")
}
