package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

var (
	ErrNoSecret     = errors.New("JWT_SECRET not set")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims ties a session token to a stored profile. The role claim is a
// display hint for clients; the admin gate re-reads the live role from
// the user store on every request.
type Claims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func signingSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrNoSecret
	}
	return []byte(secret), nil
}

// GenerateToken issues an HS256 session token for a stored user.
func GenerateToken(userID, email, role string) (string, error) {
	if userID == "" {
		return "", errors.New("cannot issue a token without a user id")
	}

	secret, err := signingSecret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken verifies a session token and returns its identity claims.
func ValidateToken(tokenString string) (string, string, string, error) {
	secret, err := signingSecret()
	if err != nil {
		return "", "", "", err
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %q", ErrInvalidToken, t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", "", ErrInvalidToken
	}

	return claims.UserID, claims.Email, claims.Role, nil
}
