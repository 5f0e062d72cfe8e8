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

// GenerateHandler renders questionnaire answers into a Markdown brief.
type GenerateHandler struct {
	gen *services.GeneratorService
	log zerolog.Logger
}

func NewGenerateHandler(gen *services.GeneratorService, log zerolog.Logger) *GenerateHandler {
	return &GenerateHandler{gen: gen, log: log}
}

// GenerateResponse is the body of a successful POST /api/generate.
type GenerateResponse struct {
	TemplateID string `json:"templateId"`
	Markdown   string `json:"markdown"`
}

// Generate handles POST /api/generate.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req validate.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	md, err := h.gen.Generate(r.Context(), req.TemplateID, req.Answers)
	if err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			// Per-question failures keyed by question ID.
			respond.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  http.StatusText(http.StatusBadRequest),
				"code":   http.StatusBadRequest,
				"fields": fields,
			})
			return
		}
		if errors.Is(err, model.ErrValidation) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		h.log.Error().Err(err).Str("templateId", req.TemplateID).Msg("generate failed")
		respond.WriteInternalError(w, "failed to generate brief")
		return
	}
	respond.WriteJSON(w, http.StatusOK, GenerateResponse{TemplateID: req.TemplateID, Markdown: md})
}
