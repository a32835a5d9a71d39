// Package auth validates access tokens issued by the hosted auth provider.
// The club does not issue tokens itself; members sign in with the provider
// and send its HS256 access token as a Bearer token.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// TokenValidator checks provider-issued access tokens.
type TokenValidator struct {
	secret []byte
	issuer string
}

// NewTokenValidator creates a validator for tokens signed with secret.
// An empty issuer accepts any issuer.
func NewTokenValidator(secret, issuer string) *TokenValidator {
	return &TokenValidator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// accessClaims are the claims the provider puts in an access token.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// ValidateToken parses and validates a token. Every failure wraps
// domain.ErrUnauthorized.
func (v *TokenValidator) ValidateToken(ctx context.Context, tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w: %w", domain.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s: %w", v.issuer, claims.Issuer, domain.ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w: %w", domain.ErrUnauthorized, err)
	}

	return Identity{UserID: userID, Email: claims.Email, Role: claims.Role}, nil
}
