package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

// HashPassword derives a 64-byte scrypt key under a fresh 16-byte salt and
// returns "hex(key).hex(salt)".
func HashPassword(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// comparePassword recomputes the key under the stored salt and compares in
// constant time. A malformed stored value counts as a mismatch.
func comparePassword(stored, supplied string) (bool, error) {
	keyHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok {
		return false, nil
	}
	storedKey, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, nil
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, nil
	}
	key, err := scrypt.Key([]byte(supplied), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, fmt.Errorf("derive key: %w", err)
	}
	if len(storedKey) != len(key) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(storedKey, key) == 1, nil
}
