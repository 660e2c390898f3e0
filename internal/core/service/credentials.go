package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/adriit/roledash/internal/core/domain"
)

// DefaultEmailPattern restricts accounts to the organisation's address scheme.
const (
	DefaultEmailPattern = `^[a-zA-Z0-9.-]*\.?adriit@gmail\.com$`
	DefaultEmailHint    = "Email must end with adriit@gmail.com"
)

const (
	minPasswordLen  = 8
	passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

	msgPasswordPolicy = "Password must contain at least one letter, one number, and one special character, and be at least 8 characters long"
	msgUsernameEmpty  = "Username is required"
	msgUsernameFormat = "Username must be 3-20 characters long and contain only letters, numbers, and underscores"
	msgInvalidRole    = "Invalid role. Role must be client, admin, or manager"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// CredentialPolicy holds the format rules applied before any store access.
type CredentialPolicy struct {
	email     *regexp.Regexp
	emailHint string
}

// NewCredentialPolicy compiles the email allow-list. Empty arguments fall back
// to the defaults.
func NewCredentialPolicy(emailPattern, emailHint string) (*CredentialPolicy, error) {
	if emailPattern == "" {
		emailPattern = DefaultEmailPattern
	}
	if emailHint == "" {
		emailHint = DefaultEmailHint
	}
	re, err := regexp.Compile(emailPattern)
	if err != nil {
		return nil, fmt.Errorf("compile email pattern: %w", err)
	}
	return &CredentialPolicy{email: re, emailHint: emailHint}, nil
}

// MustCredentialPolicy is NewCredentialPolicy for static patterns.
func MustCredentialPolicy(emailPattern, emailHint string) *CredentialPolicy {
	p, err := NewCredentialPolicy(emailPattern, emailHint)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *CredentialPolicy) CheckEmail(email string) error {
	if !p.email.MatchString(email) {
		return &domain.ValidationError{Field: "email", Message: "Invalid email format. " + p.emailHint}
	}
	return nil
}

// CheckPassword requires 8+ characters with at least one ASCII letter, one
// digit and one symbol.
func (p *CredentialPolicy) CheckPassword(password string) error {
	var letter, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if utf8.RuneCountInString(password) < minPasswordLen || !letter || !digit || !symbol {
		return &domain.ValidationError{Field: "password", Message: msgPasswordPolicy}
	}
	return nil
}

// NormalizeUsername trims the username and checks its format.
func (p *CredentialPolicy) NormalizeUsername(username string) (string, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return "", &domain.ValidationError{Field: "username", Message: msgUsernameEmpty}
	}
	if !usernamePattern.MatchString(trimmed) {
		return "", &domain.ValidationError{Field: "username", Message: msgUsernameFormat}
	}
	return trimmed, nil
}
