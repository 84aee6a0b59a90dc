package server

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}

	if !verifyPassword("secret", hash) {
		t.Error("original password should verify")
	}
	if verifyPassword("Secret", hash) {
		t.Error("different password must not verify")
	}
	if verifyPassword("", hash) {
		t.Error("empty password must not verify")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	h2, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	if string(h1) == string(h2) {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}
