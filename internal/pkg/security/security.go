// Package security handles PIN hashing and verification via bcrypt, plus the
// generation of usernames and 4-digit PINs for newly rostered scouts.
package security

import (
	"log"
	"math/rand"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPIN returns the bcrypt hash of a plaintext PIN.
func HashPIN(pin string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		log.Print(err.Error())
	}
	return string(hash)
}

// CheckPIN compares a bcrypt hash with a candidate PIN. Returns nil when
// they match.
func CheckPIN(hashedPIN, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(pin))
}

// GeneratePIN returns a random 4-digit PIN as a string.
func GeneratePIN() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}

// GenerateUsername derives a login name from a scout's display name: first
// name plus last initial, lowercased, letters only. "Maya Lopez" becomes
// "mayal".
func GenerateUsername(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLower(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	parts := strings.Fields(b.String())
	if len(parts) == 0 {
		return "unknown"
	}
	username := parts[0]
	if len(parts) > 1 {
		username += parts[len(parts)-1][:1]
	}
	return username
}

// AlternateUsername is used when the derived username is already taken:
// first name, up to three letters of the last name, and a random digit.
func AlternateUsername(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLower(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	parts := strings.Fields(b.String())
	if len(parts) == 0 {
		return "unknown" + strconv.Itoa(rand.Intn(9))
	}
	username := parts[0]
	if len(parts) > 1 {
		last := parts[len(parts)-1]
		if len(last) > 3 {
			last = last[:3]
		}
		username += last
	}
	return username + strconv.Itoa(rand.Intn(9))
}
