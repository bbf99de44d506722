package crypto

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("pass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pass123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := h.Compare(hash, "pass123"); err != nil {
		t.Errorf("matching password rejected: %v", err)
	}
	if err := h.Compare(hash, "pass124"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	if got := NewBcryptHasher(99).cost; got != bcrypt.DefaultCost {
		t.Errorf("expected default cost, got %d", got)
	}
}
