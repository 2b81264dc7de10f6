package domain

import "github.com/golang-jwt/jwt/v5"

// Claims is the payload embedded in both access and refresh tokens.
// The two classes carry identical claims; they differ only in the
// signing secret and expiry horizon.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// TokenPair is produced fresh on every register/login/refresh. Tokens
// are never stored server-side; they expire by embedded timestamp alone.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
