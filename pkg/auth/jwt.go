package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed, expired, bad
// signature, wrong algorithm. Callers must not distinguish between causes.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims represents the JWT claims embedded in a session token
type SessionClaims struct {
	DisplayName string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens
type TokenService interface {
	Issue(employeeCode, displayName string) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
}

type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a token service signing with HS256
func NewTokenService(secret string, expiry time.Duration) TokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *tokenService) Issue(employeeCode, displayName string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employeeCode,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
