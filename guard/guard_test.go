package guard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	adminkit "github.com/kultura-platform/adminkit"
	"github.com/kultura-platform/adminkit/store"
)

func forgeToken(t *testing.T, subject string, roles []string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing token failed: %v", err)
	}
	return raw
}

// newSessionWithRoles builds a session hydrated from a seeded store, so no
// network is involved.
func newSessionWithRoles(t *testing.T, roles []string) *adminkit.Session {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected network request during guard test")
	}))
	t.Cleanup(server.Close)

	ctx := context.Background()
	st := store.NewMemory()
	if roles != nil {
		raw := forgeToken(t, "alice@example.com", roles)
		if err := st.Save(ctx, raw, store.Identity{Subject: "alice@example.com", Roles: roles}); err != nil {
			t.Fatalf("seeding store failed: %v", err)
		}
	}

	session, err := adminkit.New().
		WithBaseURL(server.URL).
		WithStore(st).
		Build(ctx)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(session.Close)
	return session
}

func TestEvaluate(t *testing.T) {
	admin := newSessionWithRoles(t, []string{"ROLE_ADMIN"})
	user := newSessionWithRoles(t, []string{"USER"})
	anonymous := newSessionWithRoles(t, nil)

	tests := []struct {
		name         string
		session      *adminkit.Session
		requiredRole string
		want         Decision
	}{
		{"nil session redirects", nil, "", DecisionRedirectLogin},
		{"anonymous redirects", anonymous, "", DecisionRedirectLogin},
		{"anonymous redirects before role check", anonymous, "ADMIN", DecisionRedirectLogin},
		{"authenticated allowed", user, "", DecisionAllow},
		{"admin allowed on admin surface", admin, "ADMIN", DecisionAllow},
		{"prefix-equivalent role allowed", admin, "ROLE_ADMIN", DecisionAllow},
		{"user denied on admin surface", user, "ADMIN", DecisionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.session, tt.requiredRole); got != tt.want {
				t.Errorf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	admin := newSessionWithRoles(t, []string{"ROLE_ADMIN"})
	user := newSessionWithRoles(t, []string{"USER"})
	anonymous := newSessionWithRoles(t, nil)

	if err := Require(admin, "ADMIN"); err != nil {
		t.Errorf("Require(admin, ADMIN) = %v, want nil", err)
	}
	if err := Require(user, "ADMIN"); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("Require(user, ADMIN) = %v, want ErrAccessDenied", err)
	}
	if err := Require(anonymous, "ADMIN"); !errors.Is(err, ErrLoginRequired) {
		t.Errorf("Require(anonymous, ADMIN) = %v, want ErrLoginRequired", err)
	}
	if err := Require(nil, ""); !errors.Is(err, ErrLoginRequired) {
		t.Errorf("Require(nil) = %v, want ErrLoginRequired", err)
	}
}

func TestDecisionString(t *testing.T) {
	if DecisionDenied.String() != "denied" || DecisionAllow.String() != "allow" {
		t.Error("Decision labels changed")
	}
}
