// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// TokenSubject is the claim subject issued for the single-operator login.
const TokenSubject = "owner"

// ErrInvalidAccessKey is returned when the submitted access key does not
// match the configured one.
var ErrInvalidAccessKey = errors.New("invalid access key")

// JWTGenerator defines the interface for JWT token generation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given subject.
	GenerateToken(subject string) (string, error)
}

// authUsecase implements the access-key authentication logic.
type authUsecase struct {
	keyHash      []byte
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase with the given access-key hash
// and token generator.
func NewAuthUsecase(keyHash []byte, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		keyHash:      keyHash,
		jwtGenerator: jwtGenerator,
	}
}

// LoadAccessKeyHash resolves the bcrypt hash of the access key from the
// environment. ACCESS_KEY_HASH takes precedence; when only the plain
// ACCESS_KEY is set, it is hashed at startup so the plaintext never has to
// be compared directly.
func LoadAccessKeyHash() ([]byte, error) {
	if hash := os.Getenv("ACCESS_KEY_HASH"); hash != "" {
		return []byte(hash), nil
	}
	key := os.Getenv("ACCESS_KEY")
	if key == "" {
		return nil, errors.New("neither ACCESS_KEY_HASH nor ACCESS_KEY is set")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash access key: %w", err)
	}
	return hashed, nil
}

// Login verifies the access key and returns a signed JWT token on success.
func (u *authUsecase) Login(accessKey string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(u.keyHash, []byte(accessKey)); err != nil {
		return "", ErrInvalidAccessKey
	}

	token, err := u.jwtGenerator.GenerateToken(TokenSubject)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
