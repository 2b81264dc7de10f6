package usecase

import (
	"errors"
	"time"

	"auth-service/internal/auth/domain"
	"auth-service/internal/auth/dto"
	"auth-service/internal/auth/repository"
	"auth-service/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *dto.RegisterRequest) (*domain.User, *domain.TokenPair, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
	}

	// Create enforces email uniqueness atomically, so a concurrent
	// registration that slipped past the lookup still fails here.
	if err := u.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	pair, err := u.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (u *authUsecase) Login(req *dto.LoginRequest) (*domain.User, *domain.TokenPair, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, nil, err
	}

	// Unknown email and wrong password return the same error so responses
	// cannot be used to enumerate accounts.
	if user == nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := u.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (u *authUsecase) Refresh(refreshToken string) (*domain.User, *domain.TokenPair, error) {
	claims, err := u.verifyToken(refreshToken, u.config.JWTRefreshSecret)
	if err != nil {
		return nil, nil, err
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		// The signature checks out but the identity is gone; stop
		// honoring the credential.
		return nil, nil, domain.ErrTokenInvalid
	}

	pair, err := u.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (u *authUsecase) GetProfile(userID string) (*domain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) VerifyAccessToken(token string) (*domain.Claims, error) {
	return u.verifyToken(token, u.config.JWTAccessSecret)
}

// issueTokens signs an access and a refresh token from the same claim
// payload. The two classes use distinct secrets, so a token of one class can
// never verify under the other.
func (u *authUsecase) issueTokens(user *domain.User) (*domain.TokenPair, error) {
	accessToken, err := u.signToken(user, u.config.JWTAccessSecret, u.config.JWTAccessExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.signToken(user, u.config.JWTRefreshSecret, u.config.JWTRefreshExpiry)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) signToken(user *domain.User, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: user.ID,
		Email:  user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (u *authUsecase) verifyToken(tokenString, secret string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
