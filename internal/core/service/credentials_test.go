package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/adriit/roledash/internal/core/domain"
)

func TestCredentialPolicy_CheckEmail(t *testing.T) {
	p := MustCredentialPolicy("", "")

	valid := []string{"adriit@gmail.com", "x.adriit@gmail.com", "john.doe-adriit@gmail.com"}
	for _, email := range valid {
		if err := p.CheckEmail(email); err != nil {
			t.Fatalf("%q should be accepted: %v", email, err)
		}
	}

	invalid := []string{"", "x@gmail.com", "x.adriit@gmail.com.evil", "x_adriit@gmail.com", "x.adriit@gmailXcom"}
	for _, email := range invalid {
		err := p.CheckEmail(email)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%q should be rejected, got %v", email, err)
		}
		if !strings.HasSuffix(verr.Message, DefaultEmailHint) {
			t.Fatalf("message should carry the policy hint: %q", verr.Message)
		}
	}
}

func TestCredentialPolicy_CustomPattern(t *testing.T) {
	p, err := NewCredentialPolicy(`^[a-z]+@corp\.example$`, "Use your corp address")
	if err != nil {
		t.Fatalf("NewCredentialPolicy returned error: %v", err)
	}
	if err := p.CheckEmail("ana@corp.example"); err != nil {
		t.Fatalf("expected acceptance: %v", err)
	}
	if err := p.CheckEmail("x.adriit@gmail.com"); err == nil || err.Error() != "Invalid email format. Use your corp address" {
		t.Fatalf("unexpected result: %v", err)
	}

	if _, err := NewCredentialPolicy("([", ""); err == nil {
		t.Fatalf("expected compile error for bad pattern")
	}
}

func TestCredentialPolicy_CheckPassword(t *testing.T) {
	p := MustCredentialPolicy("", "")

	tests := []struct {
		password string
		ok       bool
	}{
		{"Abc12345!", true},
		{"a1!aaaaa", true},
		{"a1!aaaa", false},
		{"abcdefgh1", false},
		{"abcdefgh!", false},
		{"12345678!", false},
		{"ñññññ1!a", true},
		{"ñññññ1!", false},
	}
	for _, tt := range tests {
		err := p.CheckPassword(tt.password)
		if (err == nil) != tt.ok {
			t.Fatalf("CheckPassword(%q) = %v, want ok=%v", tt.password, err, tt.ok)
		}
	}
}

func TestCredentialPolicy_NormalizeUsername(t *testing.T) {
	p := MustCredentialPolicy("", "")

	got, err := p.NormalizeUsername("  bob_1  ")
	if err != nil || got != "bob_1" {
		t.Fatalf("NormalizeUsername = %q, %v", got, err)
	}

	tests := map[string]string{
		"":                      msgUsernameEmpty,
		"   ":                   msgUsernameEmpty,
		"ab":                    msgUsernameFormat,
		"abcdefghijklmnopqrstu": msgUsernameFormat,
		"bob 1":                 msgUsernameFormat,
		"bob.1":                 msgUsernameFormat,
	}
	for in, want := range tests {
		_, err := p.NormalizeUsername(in)
		if err == nil || err.Error() != want {
			t.Fatalf("NormalizeUsername(%q) = %v, want %q", in, err, want)
		}
	}
}
