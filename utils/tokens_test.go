package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func TestNewAccessToken(t *testing.T) {
	m, err := NewManager("test-key")
	if err != nil {
		t.Fatal(err)
	}

	signed, err := m.NewAccessToken(jwt.StandardClaims{
		Subject:   "7",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatal(err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-key"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("expected valid token, got %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != "7" {
		t.Fatalf("expected subject 7, got %v", claims["sub"])
	}
}

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m, err := NewManager("test-key")
	if err != nil {
		t.Fatal(err)
	}

	token, id, hash, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}

	gotID, secret, ok := SplitRefreshToken(token)
	if !ok {
		t.Fatalf("expected splittable token, got %q", token)
	}
	if gotID != id {
		t.Fatalf("expected id %s, got %s", id, gotID)
	}
	if !CheckRefreshSecret(hash, secret) {
		t.Fatal("expected secret to match its hash")
	}
	if CheckRefreshSecret(hash, "wrong") {
		t.Fatal("wrong secret must not match")
	}
}

func TestSplitRefreshToken(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{"well formed", "abc.def", true},
		{"no separator", "abcdef", false},
		{"empty id", ".def", false},
		{"empty secret", "abc.", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok := SplitRefreshToken(tc.in)
			if ok != tc.ok {
				t.Fatalf("SplitRefreshToken(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
		})
	}
}
