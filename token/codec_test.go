package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func forgeToken(t *testing.T, subject string, roles []string, expiresAt time.Time) string {
	t.Helper()

	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing token failed: %v", err)
	}
	return raw
}

func TestDecode(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := forgeToken(t, "alice@example.com", []string{"ROLE_ADMIN", "USER"}, expiry)

	identity, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if identity.Subject != "alice@example.com" {
		t.Errorf("Subject = %q, want alice@example.com", identity.Subject)
	}
	if len(identity.Roles) != 2 || identity.Roles[0] != "ROLE_ADMIN" || identity.Roles[1] != "USER" {
		t.Errorf("Roles = %v, want [ROLE_ADMIN USER]", identity.Roles)
	}
	if identity.ExpiresAt != expiry.Unix() {
		t.Errorf("ExpiresAt = %d, want %d", identity.ExpiresAt, expiry.Unix())
	}
}

func TestDecodeEmptyRoles(t *testing.T) {
	raw := forgeToken(t, "bob@example.com", []string{}, time.Now().Add(time.Hour))

	identity, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(identity.Roles) != 0 {
		t.Errorf("Roles = %v, want empty", identity.Roles)
	}
}

func TestDecodeMalformed(t *testing.T) {
	valid := forgeToken(t, "alice@example.com", []string{"USER"}, time.Now().Add(time.Hour))
	missingRoles := mustSign(t, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	missingSub := mustSign(t, jwt.MapClaims{
		"roles": []string{"USER"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	missingExp := mustSign(t, jwt.MapClaims{
		"sub":   "alice@example.com",
		"roles": []string{"USER"},
	})

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"one segment", "justsomestring"},
		{"two segments", "aaa.bbb"},
		{"four segments", valid + ".extra"},
		{"payload not base64", "aaa.!!!not-base64!!!.ccc"},
		{"payload not json", "aaa.bm90anNvbg.ccc"},
		{"missing roles claim", missingRoles},
		{"missing sub claim", missingSub},
		{"missing exp claim", missingExp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.raw); !errors.Is(err, ErrMalformed) {
				t.Errorf("Decode(%q) error = %v, want ErrMalformed", tt.raw, err)
			}
		})
	}
}

func mustSign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing token failed: %v", err)
	}
	return raw
}

func TestIdentityExpired(t *testing.T) {
	now := time.Now()

	fresh := Identity{ExpiresAt: now.Add(time.Minute).Unix()}
	if fresh.Expired(now) {
		t.Error("future expiry reported as expired")
	}

	stale := Identity{ExpiresAt: now.Add(-time.Minute).Unix()}
	if !stale.Expired(now) {
		t.Error("past expiry not reported as expired")
	}

	boundary := Identity{ExpiresAt: now.Unix()}
	if boundary.Expired(now) {
		t.Error("expiry equal to now reported as expired")
	}
}

func TestExpiredFailsClosed(t *testing.T) {
	now := time.Now()

	if Expired(forgeToken(t, "alice@example.com", []string{"USER"}, now.Add(time.Hour)), now) {
		t.Error("valid token reported as expired")
	}
	if !Expired(forgeToken(t, "alice@example.com", []string{"USER"}, now.Add(-time.Hour)), now) {
		t.Error("stale token not reported as expired")
	}
	if !Expired("not-a-token", now) {
		t.Error("undecodable token not reported as expired")
	}
}
