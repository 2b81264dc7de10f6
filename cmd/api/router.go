package api

import (
	"net/http"

	"auth-service/internal/auth/delivery"
	"auth-service/internal/auth/usecase"
	"auth-service/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase usecase.AuthUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUsecase, cfg)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", delivery.AuthMiddleware(authUsecase), authHandler.Logout)
			auth.GET("/profile", delivery.AuthMiddleware(authUsecase), authHandler.Profile)
		}
	}
}
