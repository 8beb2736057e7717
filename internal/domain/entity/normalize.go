package entity

import (
	"regexp"
	"strings"
)

const (
	nationalIDLength = 11
	mobileDigits     = 11
	landlineDigits   = 10
)

var (
	formattedPhonePattern = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	barePhonePattern      = regexp.MustCompile(`^\d{10,11}$`)
)

// NormalizeEmail trims and lower-cases an email so lookups and writes agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeNationalID strips every non-digit and requires exactly 11 digits.
func NormalizeNationalID(raw string) (string, bool) {
	digits := onlyDigits(raw)
	if len(digits) != nationalIDLength {
		return "", false
	}

	return digits, true
}

// NormalizePhone accepts "(DD) DDDDD-DDDD", "(DD) DDDD-DDDD" or 10 to 11 bare digits
// and returns the parenthesized display form.
func NormalizePhone(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if !formattedPhonePattern.MatchString(trimmed) && !barePhonePattern.MatchString(trimmed) {
		return "", false
	}

	digits := onlyDigits(trimmed)
	switch len(digits) {
	case mobileDigits:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:], true
	case landlineDigits:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:], true
	default:
		return "", false
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
