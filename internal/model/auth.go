package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims issued by the identity provider.
// The subject claim carries the user id.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// UserSession is the resolved identity of the current request.
type UserSession struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
