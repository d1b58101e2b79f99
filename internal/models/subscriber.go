package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Claims is the access-token payload. Account data lives upstream; only the
// ids needed to shape requests travel in the token.
type Claims struct {
	SubscriberID uint   `json:"subscriber_id"`
	BusinessID   uint   `json:"business_id"`
	Role         string `json:"role"`
	jwt.StandardClaims
}

// Tokens is the session-mint response pair.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Session backs the refresh flow. RefreshHash stores a bcrypt hash of the
// refresh token, never the token itself.
type Session struct {
	SubscriberID int       `json:"subscriber_id"`
	BusinessID   int       `json:"business_id"`
	Role         string    `json:"role"`
	RefreshHash  string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
}
