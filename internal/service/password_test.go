package service

import "testing"

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	first, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if first == second {
		t.Fatalf("expected two hashes of the same password to differ")
	}
	if !CheckPassword("admin123", first) || !CheckPassword("admin123", second) {
		t.Fatalf("expected both hashes to verify")
	}
}

func TestCheckPasswordWrongPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if CheckPassword("admin123", "not-a-bcrypt-hash") {
		t.Fatalf("expected malformed stored hash to count as non-match")
	}
	if CheckPassword("admin123", "") {
		t.Fatalf("expected empty stored hash to count as non-match")
	}
}
