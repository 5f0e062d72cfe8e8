package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func briefingData(markdown string) model.BriefingData {
	return model.BriefingData{
		Answers:  model.AnswerSet{"technologies": model.List("react", "node")},
		Markdown: markdown,
	}
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "briefs.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.HealthPing(context.Background()))
}

func TestCreateAndGetBriefing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateBriefing(ctx, "tech-product-saas", briefingData("# Brief"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.GetBriefing(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "tech-product-saas", got.Category)
	assert.Equal(t, "# Brief", got.Data.Markdown)
	assert.Equal(t, []string{"react", "node"}, got.Data.Answers.Get("technologies").Strings())
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
}

func TestGetBriefingNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetBriefing(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateBriefingReplacesPayload(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateBriefing(ctx, "tech-product-saas", briefingData("v1"))
	require.NoError(t, err)

	updated, err := s.UpdateBriefing(ctx, created.ID, model.BriefingData{Markdown: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Data.Markdown)
	// The whole payload is swapped: old answers are gone.
	assert.True(t, updated.Data.Answers.Get("technologies").IsAbsent())
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	got, err := s.GetBriefing(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Data.Markdown)
	assert.False(t, got.Data.Answers.Has("technologies"))
}

func TestUpdateBriefingNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateBriefing(context.Background(), "no-such-id", briefingData("v2"))
	assert.ErrorIs(t, err, model.ErrNotFound)
}
