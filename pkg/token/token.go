// Package token mints and verifies the signed credential pair: a
// short-lived access token and a long-lived refresh token, each signed
// under its own secret so compromise of one key cannot forge the other
// token type.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrExpired is returned when a token verified correctly but its expiry
// has passed. Callers use it to distinguish "renewable session" from
// "invalid credential".
var ErrExpired = errors.New("token expired")

// ErrInvalid covers malformed tokens, signature mismatches and wrong
// signing methods.
var ErrInvalid = errors.New("invalid token")

// Claims represents the identity carried by both tokens of a pair.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Pair is one issuance of access + refresh tokens.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// Manager issues and verifies credential pairs. Secrets and expiries are
// injected at construction; there is no package-level state.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewManager creates a Manager with the two signing secrets and the
// access/refresh lifetimes.
func NewManager(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// AccessExpiry returns the configured access token lifetime.
func (m *Manager) AccessExpiry() time.Duration {
	return m.accessExpiry
}

// RefreshExpiry returns the configured refresh token lifetime.
func (m *Manager) RefreshExpiry() time.Duration {
	return m.refreshExpiry
}

// GeneratePair mints a fresh access/refresh pair for the given identity.
// Each token carries a unique jti, so two pairs minted within the same
// second are still distinct strings.
func (m *Manager) GeneratePair(userID uint, username string, isAdmin bool) (*Pair, error) {
	accessToken, err := m.sign(userID, username, isAdmin, m.accessSecret, m.accessExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := m.sign(userID, username, isAdmin, m.refreshSecret, m.refreshExpiry)
	if err != nil {
		return nil, err
	}

	return &Pair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ValidateAccess verifies an access token and returns its claims.
func (m *Manager) ValidateAccess(tokenString string) (*Claims, error) {
	return m.validate(tokenString, m.accessSecret)
}

// ValidateRefresh verifies a refresh token and returns its claims.
func (m *Manager) ValidateRefresh(tokenString string) (*Claims, error) {
	return m.validate(tokenString, m.refreshSecret)
}

func (m *Manager) sign(userID uint, username string, isAdmin bool, secret []byte, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (m *Manager) validate(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalid
}
