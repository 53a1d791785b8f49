package services

import (
	"testing"
	"time"
)

func TestGenerateOTPShape(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	code, expiresAt, err := GenerateOTP(now)
	if err != nil {
		t.Fatalf("GenerateOTP returned error: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("code length = %d, want 6", len(code))
	}
	for _, char := range code {
		if char < '0' || char > '9' {
			t.Fatalf("code %q contains non-digit %q", code, char)
		}
	}
	if !expiresAt.Equal(now.Add(10 * time.Minute)) {
		t.Fatalf("expiry = %v, want now+10m", expiresAt)
	}
}

func TestMatchOTP(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	code := "123456"
	live := now.Add(5 * time.Minute)
	expired := now.Add(-time.Second)

	if !MatchOTP(&code, &live, "123456", now) {
		t.Fatal("expected live matching code to pass")
	}
	if MatchOTP(&code, &live, "654321", now) {
		t.Fatal("expected wrong code to fail")
	}
	if MatchOTP(&code, &expired, "123456", now) {
		t.Fatal("expected expired code to fail even when correct")
	}
	if MatchOTP(nil, &live, "123456", now) {
		t.Fatal("expected missing stored code to fail")
	}
	if MatchOTP(&code, nil, "123456", now) {
		t.Fatal("expected missing expiry to fail")
	}
}
