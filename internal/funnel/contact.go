package funnel

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"movefunnel/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}$`)
)

// ValidationError maps form field names to messages for the visitor.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// ValidateContact checks the contact form. It returns nil or a
// *ValidationError listing every failing field.
func ValidateContact(info domain.ContactInfo) error {
	fields := make(map[string]string)
	if strings.TrimSpace(info.FirstName) == "" {
		fields["firstName"] = "First name is required"
	}
	if strings.TrimSpace(info.LastName) == "" {
		fields["lastName"] = "Last name is required"
	}
	if msg := emailProblem(info.Email); msg != "" {
		fields["email"] = msg
	}
	switch {
	case strings.TrimSpace(info.Phone) == "":
		fields["phone"] = "Phone is required"
	case !phonePattern.MatchString(stripSpace(info.Phone)):
		fields["phone"] = "Please enter a valid phone number"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateEmail checks a single email address.
func ValidateEmail(email string) error {
	if msg := emailProblem(email); msg != "" {
		return &ValidationError{Fields: map[string]string{"email": msg}}
	}
	return nil
}

func emailProblem(email string) string {
	switch {
	case strings.TrimSpace(email) == "":
		return "Email is required"
	case !emailPattern.MatchString(email):
		return "Please enter a valid email"
	}
	return ""
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
