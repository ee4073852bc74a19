package session

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	if err := m.Verify(token); err != nil {
		t.Fatalf("freshly issued token rejected: %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if err := m.Verify(token); err == nil {
			t.Errorf("token %q should be rejected", token)
		}
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := NewManager("secret-one", time.Hour)
	verifier := NewManager("secret-two", time.Hour)

	token, err := issuer.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if err := verifier.Verify(token); err == nil {
		t.Fatal("token signed with another secret should be rejected")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if err := m.Verify(token); err == nil {
		t.Fatal("expired token should be rejected")
	}
}
