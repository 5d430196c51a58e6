package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest holds credentials for POST /auth/signin.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// JWTClaims is the access-token payload issued by the mock backend.
type JWTClaims struct {
	UserID   int64    `json:"uid"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	jwt.RegisteredClaims
}
