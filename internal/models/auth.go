package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a person.
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse returns the issued tokens and identity summary.
type LoginResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresIn    int64      `json:"expires_in"`
	Person       PersonInfo `json:"person"`
	IssuedAt     time.Time  `json:"issued_at"`
}

// RefreshTokenRequest exchanges a refresh token for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	IP           string `json:"-"`
	UserAgent    string `json:"-"`
}

// RefreshTokenResponse returns the refreshed tokens.
type RefreshTokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	IssuedAt     time.Time `json:"issued_at"`
}

// PersonInfo describes the authenticated person in responses.
type PersonInfo struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"fname"`
	LastName  string     `json:"lname"`
	Email     string     `json:"email"`
	Role      PersonRole `json:"role"`
	Club      *int64     `json:"club,omitempty"`
	Team      *int64     `json:"team,omitempty"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	PersonID int64      `json:"person_id"`
	Role     PersonRole `json:"role"`
	Email    string     `json:"email"`
	jwt.RegisteredClaims
}
