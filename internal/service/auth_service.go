package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"confmatch/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNoSession    = errors.New("no active session")
)

// AuthService resolves bearer tokens issued by the identity provider
// into user sessions. It never issues tokens itself.
type AuthService struct {
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(secret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(secret),
	}
}

// ValidateSessionToken validates a session JWT and returns the user
// identity carried in its claims. The subject claim is the user id.
func (s *AuthService) ValidateSessionToken(tokenString string) (*model.UserSession, error) {
	claims := &model.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrNoSession
	}

	name := claims.Name
	if name == "" {
		name = claims.Email
	}
	return &model.UserSession{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   name,
	}, nil
}
