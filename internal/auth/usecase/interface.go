package usecase

import (
	"auth-service/internal/auth/domain"
	"auth-service/internal/auth/dto"
)

// AuthUsecase orchestrates registration, login and token handling. Logout has
// no server-side effect and lives entirely in the delivery layer: the service
// keeps no record of issued tokens, so clearing the client cookie is all
// there is to do.
type AuthUsecase interface {
	Register(req *dto.RegisterRequest) (*domain.User, *domain.TokenPair, error)
	Login(req *dto.LoginRequest) (*domain.User, *domain.TokenPair, error)
	Refresh(refreshToken string) (*domain.User, *domain.TokenPair, error)
	GetProfile(userID string) (*domain.User, error)
	VerifyAccessToken(token string) (*domain.Claims, error)
}
