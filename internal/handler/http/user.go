package http

import (
	"net/http"

	"github.com/pulsehr/ess-portal-go/internal/handler/http/middleware"
	"github.com/pulsehr/ess-portal-go/internal/handler/http/response"
	"github.com/pulsehr/ess-portal-go/internal/service/directory"
)

type UserHandler interface {
	Subordinates(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	directoryService directory.Service
}

func NewUserHandler(service directory.Service) UserHandler {
	return &UserHandlerImpl{directoryService: service}
}

// Subordinates implements UserHandler. An empty list is a normal response:
// it is how the UI decides not to show the approval surface at all.
func (h *UserHandlerImpl) Subordinates(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.CallerEmail(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	subordinates, err := h.directoryService.Subordinates(r.Context(), email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, subordinates)
}
