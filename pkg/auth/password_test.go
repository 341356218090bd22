package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("1234")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	ok, err := VerifyPassword("1234", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !ok {
		t.Errorf("VerifyPassword() rejected the correct password")
	}

	ok, err = VerifyPassword("9999", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if ok {
		t.Errorf("VerifyPassword() accepted a wrong password")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("1234")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("1234")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if first == second {
		t.Errorf("two hashes of the same password are identical")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("1234", "not-a-hash"); !errors.Is(err, ErrInvalidHash) {
		t.Errorf("VerifyPassword() error = %v, want ErrInvalidHash", err)
	}

	if _, err := VerifyPassword("1234", "$argon2id$v=1$m=65536,t=1,p=4$c2FsdA$aGFzaA"); !errors.Is(err, ErrIncompatibleVersion) {
		t.Errorf("VerifyPassword() error = %v, want ErrIncompatibleVersion", err)
	}
}
