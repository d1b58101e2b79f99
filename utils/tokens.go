package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"
)

type Manager struct {
	signingKey string
}

func NewManager(signingKey string) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}

	return &Manager{signingKey: signingKey}, nil
}

// NewAccessToken signs the given claims with HS256.
func (m *Manager) NewAccessToken(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.signingKey))
}

// NewRefreshToken issues a refresh token of the form "<id>.<secret>". The
// returned hash (bcrypt over the secret) is what gets persisted; the plain
// token goes to the client only.
func (m *Manager) NewRefreshToken() (token, id, hash string, err error) {
	idBytes := make([]byte, 16)
	if _, err = rand.Read(idBytes); err != nil {
		return "", "", "", err
	}
	secretBytes := make([]byte, 32)
	if _, err = rand.Read(secretBytes); err != nil {
		return "", "", "", err
	}
	id = fmt.Sprintf("%x", idBytes)
	secret := fmt.Sprintf("%x", secretBytes)

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", "", "", err
	}
	return id + "." + secret, id, string(hashed), nil
}

// SplitRefreshToken breaks an "<id>.<secret>" token apart.
func SplitRefreshToken(token string) (id, secret string, ok bool) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// CheckRefreshSecret compares a presented secret against the stored hash.
func CheckRefreshSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
