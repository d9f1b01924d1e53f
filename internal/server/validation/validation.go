// Package validation checks the shape of request payloads before they reach
// the auth service. Every failure is tagged with common.KindInvalidPayload and
// names the offending field.
package validation

import (
	"net/mail"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

const (
	MaxUserNameLen = 20
	MaxEmailLen    = 255
	MaxPasswordLen = 1024

	StrongPasswordMinLen = 8
	StrongPasswordMaxLen = 50
)

// Rules holds the tunable parts of validation.
type Rules struct {
	// StrongPasswords enables the strength policy on registration.
	StrongPasswords bool
}

func invalid(field, reason string) error {
	return common.KindInvalidPayload.Builder().
		With("field", field).
		Errorf("invalid %s: %s", field, reason)
}

// UserName accepts 1 to 20 letters, digits, '_', '-' or '.'.
func UserName(s string) error {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return invalid("username", "empty")
	}
	if n > MaxUserNameLen {
		return invalid("username", "too long")
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			continue
		}
		return invalid("username", "unsupported character")
	}
	return nil
}

// Password checks that a password is present and bounded.
func Password(s string) error {
	if s == "" {
		return invalid("password", "empty")
	}
	if len(s) > MaxPasswordLen {
		return invalid("password", "too long")
	}
	return nil
}

// StrongPassword requires 8 to 50 characters with at least one lowercase
// letter, one uppercase letter and one digit.
func StrongPassword(s string) error {
	n := utf8.RuneCountInString(s)
	if n < StrongPasswordMinLen || n > StrongPasswordMaxLen {
		return invalid("password", "length must be between 8 and 50")
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return invalid("password", "needs lowercase, uppercase and digit")
	}
	return nil
}

// Email accepts a bare address of at most 255 bytes.
func Email(s string) error {
	if s == "" {
		return invalid("email", "empty")
	}
	if len(s) > MaxEmailLen {
		return invalid("email", "too long")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return invalid("email", "malformed")
	}
	return nil
}

// Credentials validates an authentication payload.
func (r Rules) Credentials(username, password string) error {
	if err := UserName(username); err != nil {
		return err
	}
	return Password(password)
}

// Registration validates a registration payload.
func (r Rules) Registration(username, password, email string) error {
	if err := r.Credentials(username, password); err != nil {
		return err
	}
	if r.StrongPasswords {
		if err := StrongPassword(password); err != nil {
			return err
		}
	}
	return Email(email)
}

// UserID rejects non-positive ids.
func UserID(id int64) error {
	if id <= 0 {
		return invalid("user_id", "must be positive")
	}
	return nil
}

// Token rejects empty tokens and tokens longer than anything the service issues.
func Token(s string) error {
	if s == "" {
		return invalid("token", "empty")
	}
	if len(s) > 4*common.TokenBytes {
		return invalid("token", "too long")
	}
	return nil
}
