package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role issued by the console.
const RoleAdmin = "admin"

// LoginRequest holds admin console credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued access token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
}

// JWTClaims is the payload of admin access tokens.
type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
