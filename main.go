package main

import (
	"log"

	api "auth-service/cmd/api"
	"auth-service/internal/auth/domain"
	authRepo "auth-service/internal/auth/repository"
	authUsecase "auth-service/internal/auth/usecase"
	"auth-service/pkg/config"
	"auth-service/pkg/database"
)

func main() {
	cfg := config.Load()

	// The credential store is in-memory unless a database DSN is supplied.
	var userRepo authRepo.UserRepository
	if cfg.DatabaseDSN != "" {
		db, err := database.NewPostgresConnection(cfg.DatabaseDSN)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := db.AutoMigrate(&domain.User{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		userRepo = authRepo.NewGormRepository(db)
	} else {
		log.Println("DATABASE_DSN not set, using in-memory user store")
		userRepo = authRepo.NewMemoryRepository()
	}

	uc := authUsecase.NewAuthUsecase(userRepo, cfg)
	server := api.NewServer(uc, cfg)

	log.Printf("Server starting on port %s in %s mode", cfg.Port, cfg.Env)
	if err := server.Start(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
