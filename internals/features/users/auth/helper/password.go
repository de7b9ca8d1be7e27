package helper

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword meng-hash password plaintext dengan bcrypt (default cost).
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash membandingkan hash tersimpan dengan password plaintext.
func CheckPasswordHash(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// ValidatePasswordStrength cek panjang minimal, dipakai sebelum hashing.
func ValidatePasswordStrength(password string) error {
	if len(strings.TrimSpace(password)) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	return nil
}
