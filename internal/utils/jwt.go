package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsroom/models"
)

var (
	ErrTokenSigning    = errors.New("token signing error")
	ErrTokenInvalid    = errors.New("token is invalid")
	ErrTokenExpired    = errors.New("token is expired")
	ErrUnexpectedAlgo  = errors.New("unexpected token signing algorithm")
	ErrClaimsWrongType = errors.New("token claims have unexpected type")
)

// GenerateToken issues a signed JWT for the given username.
// The token carries the username claim and expires after duration.
func GenerateToken(username, issuer, signKey string, duration time.Duration) (models.Token, error) {
	now := time.Now()
	claims := models.TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenSigning, err)
	}

	return models.Token{
		Token:        token,
		Claims:       claims,
		SignedString: signed,
	}, nil
}

// ValidateAndParseToken verifies the signature and expiry of a signed JWT
// and returns its decoded form. Expired tokens return ErrTokenExpired;
// any other verification failure returns ErrTokenInvalid.
func ValidateAndParseToken(signedToken, signKey string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(signedToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedAlgo, t.Header["alg"])
		}
		return []byte(signKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return models.Token{}, ErrTokenInvalid
	}

	return models.Token{
		Token:        token,
		Claims:       *claims,
		SignedString: signedToken,
	}, nil
}
