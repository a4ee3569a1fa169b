package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// AccessTTL returns the lifetime of issued tokens. Sessions use the same TTL.
func (m *JWTManager) AccessTTL() time.Duration {
	return m.accessTTL
}

// accessClaims extends standard JWT claims with the user's display name.
type accessClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

// Claims is the verified content of an access token.
type Claims struct {
	Email     string
	Name      string
	TokenID   string
	ExpiresAt time.Time
}

// GenerateAccessToken creates a signed HS256 JWT with the email as subject,
// the display name as a custom claim and a fresh token id.
func (m *JWTManager) GenerateAccessToken(email, name string) (string, Claims, error) {
	now := time.Now()
	c := Claims{
		Email:     email,
		Name:      name,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(m.accessTTL),
	}

	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        c.TokenID,
			Subject:   email,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", Claims{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, c, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// It checks signature, expiry and issuer but not whether the session is live.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return Claims{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("token has no subject")
	}
	if claims.ID == "" {
		return Claims{}, fmt.Errorf("token has no id")
	}

	c := Claims{
		Email:   claims.Subject,
		Name:    claims.Name,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		c.ExpiresAt = claims.ExpiresAt.Time
	}
	return c, nil
}
