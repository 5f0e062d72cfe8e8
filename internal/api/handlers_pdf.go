package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/brieffast/brieffast-server/internal/api/respond"
	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/services"
)

// ExportHandler serves stored briefings as PDF downloads.
type ExportHandler struct {
	svc *services.ExportService
	log zerolog.Logger
}

func NewExportHandler(svc *services.ExportService, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: log}
}

// ExportPDF handles GET /api/briefings/{id}/pdf?theme=<name>.
func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	theme := r.URL.Query().Get("theme")

	doc, filename, err := h.svc.Export(r.Context(), id, theme)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			respond.WriteNotFound(w, "briefing not found")
		case errors.Is(err, model.ErrValidation):
			respond.WriteBadRequest(w, err.Error())
		default:
			h.log.Error().Err(err).Str("briefingId", id).Msg("pdf export failed")
			respond.WriteInternalError(w, "failed to export PDF")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Bytes)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Bytes)
}
