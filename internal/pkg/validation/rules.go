// Package validation holds the pure field-level rules applied to
// incoming payloads before anything touches the database.
package validation

import (
	"regexp"

	"github.com/ssgi/placementms/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Email pattern: lowercase local part, lowercase domain label, lowercase tld
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9\-]+\.[a-z]{2,}$`

	// Contact numbers are exactly 10 digits
	ContactPattern = `^\d{10}$`

	// Minimum password length at registration
	PasswordMinLength = 7

	// Student identifier: fixed prefix plus 6 random digits
	StudentIDPattern = `^SSGI20\d{6}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email     *regexp.Regexp
	Contact   *regexp.Regexp
	StudentID *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	Contact:   regexp.MustCompile(ContactPattern),
	StudentID: regexp.MustCompile(StudentIDPattern),
}

// ValidateEmail checks the email address format
func ValidateEmail(email string) error {
	if !CompiledPatterns.Email.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

// ValidateContact checks that a contact number is exactly 10 digits
func ValidateContact(contact string) error {
	if !CompiledPatterns.Contact.MatchString(contact) {
		return apperrors.ErrInvalidContact
	}
	return nil
}

// ValidatePassword enforces the minimum registration password length
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLength {
		return apperrors.ErrWeakPassword
	}
	return nil
}

// ValidateStudentID checks a student identifier against the issued format
func ValidateStudentID(id string) error {
	if !CompiledPatterns.StudentID.MatchString(id) {
		return apperrors.ErrInvalidID
	}
	return nil
}
