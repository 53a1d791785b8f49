package federation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Identity is what a trusted identity provider asserts about the caller.
// Email is the only mandatory field.
type Identity struct {
	Email      string
	GivenName  string
	FamilyName string
	FullName   string
}

// Verifier turns an opaque assertion token into a verified identity.
type Verifier interface {
	Verify(ctx context.Context, assertion string) (Identity, error)
}

// HTTPVerifier resolves assertions against a provider's userinfo endpoint,
// presenting the assertion as a Bearer token.
type HTTPVerifier struct {
	httpClient  *http.Client
	userInfoURL string
}

func NewHTTPVerifier(client *http.Client, userInfoURL string) *HTTPVerifier {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPVerifier{httpClient: client, userInfoURL: userInfoURL}
}

func (verifier *HTTPVerifier) Verify(ctx context.Context, assertion string) (Identity, error) {
	if strings.TrimSpace(verifier.userInfoURL) == "" {
		return Identity{}, fmt.Errorf("userinfo url missing")
	}
	if strings.TrimSpace(assertion) == "" {
		return Identity{}, fmt.Errorf("assertion missing")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, verifier.userInfoURL, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+assertion)
	req.Header.Set("Accept", "application/json")

	resp, err := verifier.httpClient.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Identity{}, fmt.Errorf("read userinfo: %w", err)
	}
	if resp.StatusCode >= 300 {
		return Identity{}, fmt.Errorf("userinfo failed: status=%d", resp.StatusCode)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return Identity{}, fmt.Errorf("decode userinfo: %w", err)
	}

	identity := Identity{
		Email:      stringValue(raw["email"]),
		GivenName:  stringValue(raw["given_name"]),
		FamilyName: stringValue(raw["family_name"]),
		FullName:   stringValue(raw["name"]),
	}
	if identity.Email == "" {
		return Identity{}, fmt.Errorf("userinfo missing email")
	}
	return identity, nil
}

func stringValue(value any) string {
	text, _ := value.(string)
	return strings.TrimSpace(text)
}
