package utils

import "testing"

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("motdepasse123")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !IsArgon2Hash(hash) {
		t.Fatalf("Expected $argon2id$ prefix, got: %s", hash)
	}

	ok, err := VerifyPassword("motdepasse123", hash)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !ok {
		t.Error("Expected correct password to verify")
	}

	ok, err = VerifyPassword("mauvais", hash)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ok {
		t.Error("Expected wrong password to be rejected")
	}
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, err := HashPassword("pass")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	h2, err := HashPassword("pass")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if h1 == h2 {
		t.Error("Expected different salts to produce different hashes")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if _, err := VerifyPassword("pass", "pas-un-hash"); err == nil {
		t.Error("Expected error for malformed hash")
	}
}
