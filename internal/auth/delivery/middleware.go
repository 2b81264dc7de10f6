package delivery

import (
	"net/http"
	"strings"

	"auth-service/internal/auth/domain"
	"auth-service/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "user"

// AuthMiddleware gates protected routes behind access-token verification.
// The verified claims are attached to the request context; the store is
// never consulted here — the token payload is authoritative for the request.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authUsecase.VerifyAccessToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the claims attached by AuthMiddleware, or nil when
// the request was not authenticated.
func CurrentClaims(c *gin.Context) *domain.Claims {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*domain.Claims)
	if !ok {
		return nil
	}
	return claims
}
