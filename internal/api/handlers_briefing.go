// Package api exposes the briefing service over JSON HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"

	"github.com/brieffast/brieffast-server/internal/api/respond"
	"github.com/brieffast/brieffast-server/internal/api/validate"
	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/services"
)

// BriefingHandler serves the briefing CRUD endpoints.
type BriefingHandler struct {
	svc *services.BriefingService
	log zerolog.Logger
}

func NewBriefingHandler(svc *services.BriefingService, log zerolog.Logger) *BriefingHandler {
	return &BriefingHandler{svc: svc, log: log}
}

// CreateBriefing handles POST /api/briefings.
func (h *BriefingHandler) CreateBriefing(w http.ResponseWriter, r *http.Request) {
	var req validate.CreateBriefingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	b, err := h.svc.CreateBriefing(r.Context(), req.Category, *req.Data)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, b)
}

// GetBriefing handles GET /api/briefings?uuid=<id>.
func (h *BriefingHandler) GetBriefing(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("uuid")
	if id == "" {
		respond.WriteBadRequest(w, "uuid query parameter is required")
		return
	}

	b, err := h.svc.GetBriefing(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, b)
}

// UpdateBriefing handles PUT /api/briefings?uuid=<id>.
func (h *BriefingHandler) UpdateBriefing(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("uuid")
	if id == "" {
		respond.WriteBadRequest(w, "uuid query parameter is required")
		return
	}

	var req validate.UpdateBriefingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	b, err := h.svc.UpdateBriefing(r.Context(), id, *req.Data)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, b)
}

func (h *BriefingHandler) writeServiceError(w http.ResponseWriter, err error) {
	var fields validation.Errors
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, "briefing not found")
	case errors.Is(err, model.ErrValidation), errors.As(err, &fields):
		respond.WriteBadRequest(w, err.Error())
	default:
		h.log.Error().Err(err).Msg("briefing request failed")
		respond.WriteInternalError(w, "storage failure")
	}
}
