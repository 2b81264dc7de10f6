package api

import (
	"net/http"

	"auth-service/internal/auth/dto"
	"auth-service/internal/auth/usecase"
	"auth-service/pkg/config"

	"github.com/gin-gonic/gin"
)

// Server wires the gin engine with the cross-cutting middleware and routes.
type Server struct {
	engine *gin.Engine
	config *config.Config
}

func NewServer(authUsecase usecase.AuthUsecase, cfg *config.Config) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterValidators()

	r := gin.Default()
	r.Use(corsMiddleware(cfg.CORSOrigin))
	r.Use(rateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	SetupRoutes(r, authUsecase, cfg)

	return &Server{engine: r, config: cfg}
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Start() error {
	return s.engine.Run(":" + s.config.Port)
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
