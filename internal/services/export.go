package services

import (
	"context"
	"fmt"

	"github.com/brieffast/brieffast-server/internal/brief"
	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/pdf"
	"github.com/brieffast/brieffast-server/internal/store"
)

// ExportService renders stored briefings as themed PDF documents.
type ExportService struct {
	store    store.Store
	logo     []byte
	compress bool
}

func NewExportService(s store.Store, logo []byte, compress bool) *ExportService {
	return &ExportService{store: s, logo: logo, compress: compress}
}

// Export renders the briefing as a PDF in the named theme. Unknown theme
// names fall back to the default theme rather than failing the download.
// The returned filename is a slug derived from the document title.
func (s *ExportService) Export(ctx context.Context, id, themeName string) (*pdf.Document, string, error) {
	b, err := s.store.GetBriefing(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if b.Data.Markdown == "" {
		return nil, "", fmt.Errorf("%w: briefing has no generated document", model.ErrValidation)
	}

	theme := pdf.DefaultTheme
	if t, ok := pdf.ThemeByName(themeName); ok {
		theme = t
	}

	title := brief.TemplateTitle(b.Category) + " Brief"
	r := &pdf.Renderer{Theme: theme, Logo: s.logo, Compress: s.compress}
	doc, err := r.Render(title, b.Data.Markdown)
	if err != nil {
		return nil, "", err
	}
	return doc, pdf.SafeFilename(title), nil
}
