package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieffast/brieffast-server/internal/model"
)

func TestExportRendersStoredBriefing(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created, err := st.CreateBriefing(ctx, "tech-product-saas", model.BriefingData{
		Markdown: "# Tech Product/SaaS Brief\n\n## Project Overview\n\n**Project Name:** LaunchPad\n",
	})
	require.NoError(t, err)

	svc := NewExportService(st, nil, true)
	doc, filename, err := svc.Export(ctx, created.ID, "corporate")
	require.NoError(t, err)
	assert.Equal(t, "tech-product-saas-brief.pdf", filename)
	assert.Equal(t, 1, doc.Pages)
	assert.True(t, len(doc.Bytes) > 0)
	assert.Equal(t, "%PDF", string(doc.Bytes[:4]))
}

func TestExportUnknownThemeFallsBack(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created, err := st.CreateBriefing(ctx, "web-development", model.BriefingData{Markdown: "# Brief\n"})
	require.NoError(t, err)

	svc := NewExportService(st, nil, true)
	doc, _, err := svc.Export(ctx, created.ID, "not-a-theme")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Pages)
}

func TestExportMissingBriefing(t *testing.T) {
	svc := NewExportService(newTestStore(t), nil, true)

	_, _, err := svc.Export(context.Background(), "missing", "")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestExportEmptyDocument(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created, err := st.CreateBriefing(ctx, "web-development", model.BriefingData{})
	require.NoError(t, err)

	svc := NewExportService(st, nil, true)
	_, _, err = svc.Export(ctx, created.ID, "")
	assert.ErrorIs(t, err, model.ErrValidation)
}
