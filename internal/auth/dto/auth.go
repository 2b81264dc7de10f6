package dto

import "auth-service/internal/auth/domain"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpwd"`
	Name     string `json:"name" binding:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthData is the success payload for register/login/refresh. The refresh
// token travels separately as an HTTP-only cookie, never in the body.
type AuthData struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

type ProfileData struct {
	User *domain.User `json:"user"`
}
