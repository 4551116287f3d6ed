package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("expected hashing to succeed, got: %s", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Errorf("expected an argon2id encoded hash, got %s", encoded)
	}

	ok, err := VerifyPassword("correct horse battery staple", encoded)
	if err != nil {
		t.Fatalf("expected verification to succeed, got: %s", err)
	}
	if !ok {
		t.Errorf("expected the matching password to verify")
	}

	ok, err = VerifyPassword("incorrect horse battery staple", encoded)
	if err != nil {
		t.Fatalf("expected verification to succeed, got: %s", err)
	}
	if ok {
		t.Errorf("expected a different password to fail verification")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("hunter2hunter2hunter2")
	if err != nil {
		t.Fatalf("expected hashing to succeed, got: %s", err)
	}
	second, err := HashPassword("hunter2hunter2hunter2")
	if err != nil {
		t.Fatalf("expected hashing to succeed, got: %s", err)
	}
	if first == second {
		t.Errorf("expected two hashes of the same password to differ")
	}
}

func TestVerifyPasswordRejectsMalformedEncodings(t *testing.T) {
	malformed := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=4$salt",
		"$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=banana,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA",
	}
	for _, encoded := range malformed {
		if _, err := VerifyPassword("whatever", encoded); !errors.Is(err, ErrorHashEncodingInvalid) {
			t.Errorf("expected encoding error for %q, got %v", encoded, err)
		}
	}
}

func TestVerifyPasswordRejectsUnknownVersion(t *testing.T) {
	encoded := "$argon2id$v=18$m=65536,t=3,p=4$c2FsdA$aGFzaA"
	if _, err := VerifyPassword("whatever", encoded); !errors.Is(err, ErrorHashVersionUnsupported) {
		t.Errorf("expected version error, got %v", err)
	}
}
