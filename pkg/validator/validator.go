package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// Korean mobile/landline numbers, with or without hyphens: 010-1234-5678,
	// 01012345678, 02-123-4567, +82-10-1234-5678.
	phoneRegex    = regexp.MustCompile(`^(\+82|0)\d{8,10}$`)
	passwordRegex = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+\-=[\]{};':"\\|,.<>/?]{6,}$`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}

func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	return passwordRegex.MatchString(password)
}

func ValidateName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}

	return true
}

// NormalizePhone strips separators so that 010-1234-5678 and 010 1234 5678
// compare equal to 01012345678. The reservation lookup matches on this form.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, phone)
}

func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		return r
	}, s)
}
