package utils

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret123" {
		t.Fatal("HashPassword() returned the plain text password")
	}

	if !ComparePassword(hash, "secret123") {
		t.Error("ComparePassword() = false for the correct password")
	}
	if ComparePassword(hash, "wrong-password") {
		t.Error("ComparePassword() = true for a wrong password")
	}
}

func TestComparePassword_EmptyHash(t *testing.T) {
	// Seeded accounts without a password must never authenticate.
	if ComparePassword("", "anything") {
		t.Error("ComparePassword() = true for an empty hash")
	}
}
