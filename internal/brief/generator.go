package brief

import "github.com/brieffast/brieffast-server/internal/model"

// Generate renders the Markdown brief for a template's answers. Categories
// with a registered legacy generator use it; everything else goes through
// the section engine.
func Generate(answers model.AnswerSet, templateID string) string {
	if gen, ok := legacyGenerators[templateID]; ok {
		return gen(answers)
	}
	return generateSections(answers, templateID)
}
