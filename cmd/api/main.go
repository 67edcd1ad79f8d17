package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pulsehr/ess-portal-go/internal/config"
	appHTTP "github.com/pulsehr/ess-portal-go/internal/handler/http"
	"github.com/pulsehr/ess-portal-go/internal/pkg/database"
	"github.com/pulsehr/ess-portal-go/internal/pkg/jwt"
	"github.com/pulsehr/ess-portal-go/internal/pkg/storage"
	"github.com/pulsehr/ess-portal-go/internal/repository/postgresql"
	absenceService "github.com/pulsehr/ess-portal-go/internal/service/absence"
	authService "github.com/pulsehr/ess-portal-go/internal/service/auth"
	directoryService "github.com/pulsehr/ess-portal-go/internal/service/directory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	authSvc := authService.NewAuthService(userRepo, JWTService)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, userRepo, fileStorage)
	directorySvc := directoryService.NewDirectoryService(userRepo, absenceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	userHandler := appHTTP.NewUserHandler(directorySvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		absenceHandler,
		userHandler,
		cfg.App.AllowedOrigin,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
