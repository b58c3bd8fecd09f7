package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2-HMAC-SHA256 parameters. Changing these invalidates every stored
	// credential, so they are constants rather than configuration.
	hashIterations = 120000
	saltLength     = 16
	keyLength      = 32
)

var (
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	passwordRe = regexp.MustCompile(`^[A-Za-z0-9]{8,}$`)
)

// ValidateEmail reports whether the address has a plausible user@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// NormalizeEmail lowercases and trims an address; emails are compared
// case-insensitively everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePasswordPolicy checks the signup policy: at least 8 characters,
// alphanumeric only. Symbols are rejected on purpose, not by oversight.
func ValidatePasswordPolicy(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if !passwordRe.MatchString(password) {
		return fmt.Errorf("password must be 8+ characters, alphanumeric only (no special characters)")
	}
	return nil
}

// StrengthScore rates a policy-shaped password 0-100 with a coarse label for
// the signup form's strength meter.
func StrengthScore(password string) (int, string) {
	if password == "" {
		return 0, "Empty"
	}
	score := 0
	n := len(password)
	extra := n - 8
	if extra < 0 {
		extra = 0
	}
	if extra > 12 {
		extra = 12
	}
	score += extra * (50 / 12)
	if strings.IndexFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) >= 0 {
		score += 15
	}
	if strings.IndexFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0 {
		score += 15
	}
	if strings.IndexFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 {
		score += 20
	}
	if score > 100 {
		score = 100
	}
	label := "Weak"
	switch {
	case score >= 70:
		label = "Strong"
	case score >= 40:
		label = "Fair"
	}
	return score, label
}

// HashPassword derives a new salted hash for storage.
func HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("generating salt: %w", err)
	}
	hash = pbkdf2.Key([]byte(password), salt, hashIterations, keyLength, sha256.New)
	return hash, salt, nil
}

// VerifyPassword recomputes the hash with the stored salt and compares in
// constant time.
func VerifyPassword(password string, salt, hash []byte) bool {
	candidate := pbkdf2.Key([]byte(password), salt, hashIterations, keyLength, sha256.New)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
