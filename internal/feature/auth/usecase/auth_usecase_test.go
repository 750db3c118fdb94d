package usecase

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// mockJWTGenerator records the subject it was asked to sign.
type mockJWTGenerator struct {
	token   string
	err     error
	subject string
}

func (m *mockJWTGenerator) GenerateToken(subject string) (string, error) {
	m.subject = subject
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func hashKey(t *testing.T, key string) []byte {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash key: %v", err)
	}
	return hashed
}

func TestAuthUsecase_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		submitted string
		genToken  string
		genErr    error
		wantToken string
		wantErr   bool
	}{
		{
			name:      "correct key returns token",
			key:       "super-secret",
			submitted: "super-secret",
			genToken:  "signed.jwt.token",
			wantToken: "signed.jwt.token",
		},
		{
			name:      "wrong key is rejected",
			key:       "super-secret",
			submitted: "guess",
			wantErr:   true,
		},
		{
			name:      "empty key is rejected",
			key:       "super-secret",
			submitted: "",
			wantErr:   true,
		},
		{
			name:      "generator failure propagates",
			key:       "super-secret",
			submitted: "super-secret",
			genErr:    errors.New("sign failed"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := &mockJWTGenerator{token: tt.genToken, err: tt.genErr}
			u := NewAuthUsecase(hashKey(t, tt.key), gen)

			token, err := u.Login(tt.submitted)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token)
			}
			if gen.subject != TokenSubject {
				t.Errorf("expected subject %q, got %q", TokenSubject, gen.subject)
			}
		})
	}
}

func TestAuthUsecase_Login_WrongKeyError(t *testing.T) {
	t.Parallel()

	u := NewAuthUsecase(hashKey(t, "super-secret"), &mockJWTGenerator{})

	_, err := u.Login("wrong")
	if !errors.Is(err, ErrInvalidAccessKey) {
		t.Errorf("expected ErrInvalidAccessKey, got %v", err)
	}
}

func TestLoadAccessKeyHash(t *testing.T) {
	t.Run("hash takes precedence", func(t *testing.T) {
		t.Setenv("ACCESS_KEY_HASH", "$2a$10$somehash")
		t.Setenv("ACCESS_KEY", "plain")

		hash, err := LoadAccessKeyHash()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(hash) != "$2a$10$somehash" {
			t.Errorf("expected configured hash, got %q", hash)
		}
	})

	t.Run("plain key is hashed", func(t *testing.T) {
		t.Setenv("ACCESS_KEY_HASH", "")
		t.Setenv("ACCESS_KEY", "plain-key")

		hash, err := LoadAccessKeyHash()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword(hash, []byte("plain-key")); err != nil {
			t.Errorf("expected hash to verify against the plain key: %v", err)
		}
	})

	t.Run("neither set", func(t *testing.T) {
		t.Setenv("ACCESS_KEY_HASH", "")
		t.Setenv("ACCESS_KEY", "")

		if _, err := LoadAccessKeyHash(); err == nil {
			t.Error("expected error when no key is configured")
		}
	})
}
