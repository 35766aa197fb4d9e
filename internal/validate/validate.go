// Package validate holds the stateless input checks shared by the
// usecases. Every failure is a domain validation error whose message can
// be shown to the caller as is.
package validate

import (
	"fmt"
	"math"
	"net/mail"
	"slices"
	"strconv"
	"strings"

	"selmore/internal/core/domain"
)

// Password length bounds in bytes. bcrypt refuses anything longer than
// MaxPasswordLength.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// Field is a named value checked by Required.
type Field struct {
	Name  string
	Value string
}

// Required fails when any field is empty after trimming, naming every
// missing field in request order.
func Required(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return domain.Validation("Missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// Email checks that s is a bare address such as "a@b.co". Display names
// ("Bob <a@b.co>") are rejected.
func Email(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return domain.Validation("Invalid email format")
	}
	at := strings.LastIndexByte(s, '@')
	if at < 1 || !strings.Contains(s[at+1:], ".") || strings.HasSuffix(s, ".") {
		return domain.Validation("Invalid email format")
	}
	return nil
}

func Password(s string) error {
	if len(s) < MinPasswordLength {
		return domain.Validation(fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	}
	if len(s) > MaxPasswordLength {
		return domain.Validation(fmt.Sprintf("Password must be at most %d bytes long", MaxPasswordLength))
	}
	return nil
}

// Number parses a decimal number.
func Number(s, field string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, domain.Validation(field + " must be a valid number")
	}
	return n, nil
}

// Range checks lo <= n <= hi.
func Range(n, lo, hi float64, field string) error {
	if n < lo || n > hi {
		return domain.Validation(fmt.Sprintf("%s must be between %s and %s", field, formatFloat(lo), formatFloat(hi)))
	}
	return nil
}

// Money amounts are stored as NUMERIC(14,2).
const (
	MinMoney = 0.01
	MaxMoney = 999999999999.99
)

// Money checks that n is a storable positive amount and returns it rounded
// to cents.
func Money(n float64, field string) (float64, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, domain.Validation(field + " must be a valid number")
	}
	if n <= 0 {
		return 0, domain.Validation(field + " must be greater than 0")
	}
	cents := math.Round(n*100) / 100
	if err := Range(cents, MinMoney, MaxMoney, field); err != nil {
		return 0, err
	}
	return cents, nil
}

func formatFloat(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// OneOf checks that s is one of allowed.
func OneOf(s, field string, allowed ...string) error {
	if !slices.Contains(allowed, s) {
		return domain.Validation(fmt.Sprintf("Invalid %s. Must be one of: %s", field, strings.Join(allowed, ", ")))
	}
	return nil
}
