package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/service"
)

func newTokens(t *testing.T) *service.TokenService {
	t.Helper()
	tokens, err := service.NewTokenService([]byte("0123456789abcdef0123456789abcdef"), "test")
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return tokens
}

func runAuth(t *testing.T, tokens *service.TokenService, header string) (*httptest.ResponseRecorder, *domain.UserIdentity) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *domain.UserIdentity
	handler := Auth(tokens)(func(c echo.Context) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity not set")
		}
		seen = &identity
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := newTokens(t)
	want := domain.UserIdentity{UserID: 7, Username: "alice", Role: domain.RoleShop}
	tok, err := tokens.Issue(want, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, seen := runAuth(t, tokens, "Bearer "+tok.Raw)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen == nil || *seen != want {
		t.Fatalf("unexpected identity: %+v", seen)
	}
}

func TestAuthMiddleware_LowercaseScheme(t *testing.T) {
	tokens := newTokens(t)
	tok, _ := tokens.Issue(domain.UserIdentity{UserID: 1, Username: "a", Role: domain.RoleAdmin}, time.Hour)

	if rec, _ := runAuth(t, tokens, "bearer "+tok.Raw); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tokens := newTokens(t)
	expired, _ := tokens.Issue(domain.UserIdentity{UserID: 1, Username: "a", Role: domain.RoleAdmin}, -time.Second)
	valid, _ := tokens.Issue(domain.UserIdentity{UserID: 1, Username: "a", Role: domain.RoleAdmin}, time.Hour)
	tampered := valid.Raw[:len(valid.Raw)-3] + "AAA"
	if tampered == valid.Raw {
		tampered = valid.Raw[:len(valid.Raw)-3] + "BAA"
	}

	var bodies []string
	for name, header := range map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"empty bearer":   "Bearer ",
		"garbage":        "Bearer not-a-jwt",
		"expired":        "Bearer " + expired.Raw,
		"tampered":       "Bearer " + tampered,
	} {
		rec, seen := runAuth(t, tokens, header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, rec.Code)
		}
		if seen != nil {
			t.Errorf("%s: next must not run", name)
		}
		bodies = append(bodies, rec.Body.String())
	}

	for _, b := range bodies[1:] {
		if b != bodies[0] {
			t.Errorf("401 bodies must be identical: %q vs %q", b, bodies[0])
		}
	}
}
