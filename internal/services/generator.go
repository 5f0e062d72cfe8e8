package services

import (
	"context"
	"fmt"

	"github.com/brieffast/brieffast-server/internal/brief"
	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/questionnaire"
)

// GeneratorService turns questionnaire answers into a Markdown brief.
type GeneratorService struct{}

func NewGeneratorService() *GeneratorService { return &GeneratorService{} }

// Generate validates the answers against the template's questionnaire (when
// one is declared) and renders the brief. Validation failures come back as
// ozzo validation.Errors keyed by question ID.
func (s *GeneratorService) Generate(ctx context.Context, templateID string, answers model.AnswerSet) (string, error) {
	if templateID == "" {
		return "", fmt.Errorf("%w: templateId is required", model.ErrValidation)
	}
	if _, ok := brief.TemplateByID(templateID); !ok {
		return "", fmt.Errorf("%w: unknown template %q", model.ErrValidation, templateID)
	}
	if q, ok := questionnaire.ByTemplateID(templateID); ok {
		if err := q.Validate(answers); err != nil {
			return "", err
		}
	}
	return brief.Generate(answers, templateID), nil
}
