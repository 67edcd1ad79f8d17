package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pulsehr/ess-portal-go/internal/domain/auth"
	"github.com/pulsehr/ess-portal-go/internal/handler/http/response"
	authService "github.com/pulsehr/ess-portal-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService authService.Service
}

func NewAuthHandler(service authService.Service) AuthHandler {
	return &AuthHandlerImpl{authService: service}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in successfully", "email", tokenResponse.Email)
	response.Success(w, tokenResponse)
}
