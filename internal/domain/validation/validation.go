// Package validation holds pure predicates over primitive inputs. Nothing here
// touches storage.
package validation

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
)

const (
	maxIDLength       = 128
	minPasswordLength = 6
	maxLastNameLength = 80
	maxBunkNameLength = 50
	maxAddressLength  = 200
)

var (
	idPattern        = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	firstNamePattern = regexp.MustCompile(`^[A-Za-z]{1,40}$`)
	lastNamePattern  = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+){0,2}$`)
	phonePattern     = regexp.MustCompile(`^\d{10}$`)
	pincodePattern   = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// IsValidID accepts opaque ids made of letters, digits, '-' and '_'
func IsValidID(id string) bool {
	return id != "" && len(id) <= maxIDLength && idPattern.MatchString(id)
}

// IsPositiveAmount accepts finite numbers greater than zero
func IsPositiveAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}

// IsPositivePoints accepts point counts greater than zero
func IsPositivePoints(points int64) bool {
	return points > 0
}

// IsValidCreditPercentage accepts finite numbers in [0,100]
func IsValidCreditPercentage(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0 && p <= 100
}

// IsValidRedemptionRate accepts finite numbers greater than zero
func IsValidRedemptionRate(r float64) bool {
	return IsPositiveAmount(r)
}

// IsValidEmail performs a shape check, not a deliverability check
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword enforces the minimum length
func IsValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= minPasswordLength
}

// IsValidFirstName accepts 1-40 ASCII letters
func IsValidFirstName(name string) bool {
	return firstNamePattern.MatchString(name)
}

// IsValidLastName accepts up to three words of ASCII letters, 80 chars max
func IsValidLastName(name string) bool {
	return len(name) <= maxLastNameLength && lastNamePattern.MatchString(name)
}

// IsValidPhone accepts exactly ten digits
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidPincode accepts six digits with a non-zero first digit
func IsValidPincode(pincode string) bool {
	return pincodePattern.MatchString(pincode)
}

// IsValidBunkName accepts 1-50 characters
func IsValidBunkName(name string) bool {
	n := utf8.RuneCountInString(name)
	return strings.TrimSpace(name) != "" && n <= maxBunkNameLength
}

// IsNonEmpty rejects blank strings and overly long free text
func IsNonEmpty(s string) bool {
	return strings.TrimSpace(s) != "" && utf8.RuneCountInString(s) <= maxAddressLength
}

// RequireID returns ErrInvalidID naming the field when id is malformed
func RequireID(field, id string) error {
	if !IsValidID(id) {
		return errs.WithMessage(errs.ErrInvalidID, field+" is missing or malformed")
	}
	return nil
}
