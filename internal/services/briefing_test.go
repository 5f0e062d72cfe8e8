package services

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/store"
	"github.com/brieffast/brieffast-server/internal/store/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func saasAnswers() model.AnswerSet {
	return model.AnswerSet{
		"product-name":        model.Text("LaunchPad"),
		"product-description": model.Text("A launch checklist tool for indie founders."),
	}
}

func TestCreateBriefingGeneratesMissingMarkdown(t *testing.T) {
	svc := NewBriefingService(newTestStore(t))

	b, err := svc.CreateBriefing(context.Background(), "tech-product-saas", model.BriefingData{Answers: saasAnswers()})
	require.NoError(t, err)
	assert.Contains(t, b.Data.Markdown, "## Project Overview")
	assert.Contains(t, b.Data.Markdown, "LaunchPad")
}

func TestCreateBriefingKeepsClientMarkdown(t *testing.T) {
	svc := NewBriefingService(newTestStore(t))

	b, err := svc.CreateBriefing(context.Background(), "tech-product-saas", model.BriefingData{
		Answers:  saasAnswers(),
		Markdown: "# Client Rendered",
	})
	require.NoError(t, err)
	assert.Equal(t, "# Client Rendered", b.Data.Markdown)
}

func TestCreateBriefingRequiresCategory(t *testing.T) {
	svc := NewBriefingService(newTestStore(t))

	_, err := svc.CreateBriefing(context.Background(), "", model.BriefingData{})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestUpdateBriefingReplacesPayload(t *testing.T) {
	svc := NewBriefingService(newTestStore(t))
	ctx := context.Background()

	created, err := svc.CreateBriefing(ctx, "tech-product-saas", model.BriefingData{Markdown: "v1"})
	require.NoError(t, err)

	updated, err := svc.UpdateBriefing(ctx, created.ID, model.BriefingData{Markdown: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Data.Markdown)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestGetBriefingNotFound(t *testing.T) {
	svc := NewBriefingService(newTestStore(t))

	_, err := svc.GetBriefing(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGeneratorValidatesDeclaredQuestionnaires(t *testing.T) {
	gen := NewGeneratorService()

	_, err := gen.Generate(context.Background(), "web-development", model.AnswerSet{})
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "project-name")
}

func TestGeneratorRejectsUnknownTemplate(t *testing.T) {
	gen := NewGeneratorService()

	_, err := gen.Generate(context.Background(), "mystery-template", model.AnswerSet{})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestGeneratorRendersUndeclaredTemplates(t *testing.T) {
	gen := NewGeneratorService()

	md, err := gen.Generate(context.Background(), "tech-product-saas", saasAnswers())
	require.NoError(t, err)
	assert.Contains(t, md, "LaunchPad")
}
