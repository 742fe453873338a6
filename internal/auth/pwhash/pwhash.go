// Package pwhash hashes admin passwords with argon2id.
package pwhash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	memory  = 64 * 1024
	threads = 2
	keyLen  = 32
	prefix  = "argon2id"
)

var ErrMismatch = errors.New("password does not match")

type PasswordHasher struct {
	saltSize   int
	iterations int
}

func New(saltSize, iterations int) (*PasswordHasher, error) {
	if saltSize < 8 {
		return nil, fmt.Errorf("salt size must be at least 8 bytes, got %d", saltSize)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	return &PasswordHasher{
		saltSize:   saltSize,
		iterations: iterations,
	}, nil
}

// HashPassword returns an encoded hash in the form argon2id$iterations$salt$key.
func (ph *PasswordHasher) HashPassword(password string) (string, error) {
	salt := make([]byte, ph.saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("can't generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, uint32(ph.iterations), memory, threads, keyLen)
	return strings.Join([]string{
		prefix,
		strconv.Itoa(ph.iterations),
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	}, "$"), nil
}

// Validate checks password against an encoded hash. The iteration count stored in
// the hash is used, so hashes survive configuration changes.
func (ph *PasswordHasher) Validate(password, encoded string) error {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != prefix {
		return fmt.Errorf("malformed password hash")
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations < 1 {
		return fmt.Errorf("malformed password hash iterations")
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return fmt.Errorf("malformed password hash salt: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return fmt.Errorf("malformed password hash key: %w", err)
	}

	got := argon2.IDKey([]byte(password), salt, uint32(iterations), memory, threads, uint32(len(want)))
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrMismatch
	}
	return nil
}
