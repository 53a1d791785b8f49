package federation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPVerifierResolvesIdentity(t *testing.T) {
	t.Parallel()

	var seenAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAuthorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"a@x.com","given_name":"Ada","family_name":"Lovelace","name":"Ada Lovelace"}`))
	}))
	defer server.Close()

	verifier := NewHTTPVerifier(server.Client(), server.URL)
	identity, err := verifier.Verify(context.Background(), "assertion-token")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if seenAuthorization != "Bearer assertion-token" {
		t.Fatalf("authorization header = %q", seenAuthorization)
	}
	if identity.Email != "a@x.com" || identity.GivenName != "Ada" || identity.FamilyName != "Lovelace" {
		t.Fatalf("identity = %+v", identity)
	}
}

func TestHTTPVerifierRejectsMissingEmail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"No Email"}`))
	}))
	defer server.Close()

	verifier := NewHTTPVerifier(server.Client(), server.URL)
	if _, err := verifier.Verify(context.Background(), "assertion-token"); err == nil {
		t.Fatal("expected missing email to fail verification")
	}
}

func TestHTTPVerifierRejectsProviderErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	verifier := NewHTTPVerifier(server.Client(), server.URL)
	if _, err := verifier.Verify(context.Background(), "expired-assertion"); err == nil {
		t.Fatal("expected provider rejection to fail verification")
	}
}

func TestHTTPVerifierRejectsEmptyAssertion(t *testing.T) {
	t.Parallel()

	verifier := NewHTTPVerifier(nil, "https://idp.example/userinfo")
	if _, err := verifier.Verify(context.Background(), "  "); err == nil {
		t.Fatal("expected empty assertion to fail")
	}
}
