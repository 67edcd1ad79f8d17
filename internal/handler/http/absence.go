package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/pulsehr/ess-portal-go/internal/handler/http/middleware"
	"github.com/pulsehr/ess-portal-go/internal/handler/http/response"
)

const maxDocumentSize = 10 << 20 // 10 MiB

type AbsenceHandler interface {
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListForUser(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Document(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.Service
}

func NewAbsenceHandler(service absence.Service) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: service}
}

// ListOwn implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.CallerEmail(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	records, err := h.absenceService.ListOwn(r.Context(), email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListForUser implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListForUser(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.CallerEmail(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	targetEmail := chi.URLParam(r, "email")
	if targetEmail == "" {
		response.BadRequest(w, "Email is required", nil)
		return
	}

	records, err := h.absenceService.ListForUser(r.Context(), email, targetEmail)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Create implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.CallerEmail(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := absence.CreateRequest{
		OwnerEmail: email,
		StartDate:  r.FormValue("startDate"),
		EndDate:    r.FormValue("endDate"),
		Type:       r.FormValue("type"),
	}

	if file, header, err := r.FormFile("document"); err == nil {
		defer file.Close()
		req.Document = file
		req.DocumentName = header.Filename
	}

	created, err := h.absenceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence created successfully", created)
}

// Approve implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.CallerEmail(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Absence ID is required", nil)
		return
	}

	if err := h.absenceService.Approve(r.Context(), id, email); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence approved successfully", nil)
}

// Delete implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.CallerEmail(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Absence ID is required", nil)
		return
	}

	if err := h.absenceService.Delete(r.Context(), id, email); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted successfully", nil)
}

// Document implements AbsenceHandler. Streams the evidence file as a
// download; the client only labels the save action.
func (h *AbsenceHandlerImpl) Document(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Absence ID is required", nil)
		return
	}

	doc, err := h.absenceService.Document(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer doc.Content.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Name+`"`)
	if _, err := io.Copy(w, doc.Content); err != nil {
		slog.Error("Failed to stream document", "absence_id", id, "error", err)
	}
}
