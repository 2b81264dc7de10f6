package delivery

import (
	"net/http"

	"auth-service/internal/auth/domain"
	"auth-service/internal/auth/dto"
	"auth-service/internal/auth/usecase"
	"auth-service/pkg/config"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refreshToken"

// AuthHandler exposes the authentication flows over HTTP.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, pair, err := h.authUsecase.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	respondSuccess(c, http.StatusCreated, dto.AuthData{User: user, AccessToken: pair.AccessToken})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, pair, err := h.authUsecase.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	respondSuccess(c, http.StatusOK, dto.AuthData{User: user, AccessToken: pair.AccessToken})
}

// Refresh mints a new token pair from the refresh cookie. A body field is
// accepted as a fallback for clients that cannot send cookies.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie(refreshCookieName)
	if err != nil || token == "" {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
			respondError(c, domain.ErrTokenInvalid)
			return
		}
		token = req.RefreshToken
	}

	user, pair, err := h.authUsecase.Refresh(token)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	respondSuccess(c, http.StatusOK, dto.AuthData{User: user, AccessToken: pair.AccessToken})
}

// Logout clears the refresh cookie. The service holds no token state, so an
// already-issued access token stays valid until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Logged out successfully"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		respondError(c, domain.ErrTokenInvalid)
		return
	}

	user, err := h.authUsecase.GetProfile(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ProfileData{User: user})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, token, int(h.config.JWTRefreshExpiry.Seconds()), "/", "", h.config.IsProduction(), true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, "", -1, "/", "", h.config.IsProduction(), true)
}
