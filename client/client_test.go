package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieffast/brieffast-server/internal/api"
	"github.com/brieffast/brieffast-server/internal/config"
	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/store/sqlite"
)

const testAPIKey = "client-test-key"

func newTestService(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cfg := &config.Config{
		APIKey:             testAPIKey,
		SharePathPrefix:    "/b/",
		CORSAllowedOrigins: []string{"*"},
	}
	srv := httptest.NewServer(api.NewRouter(cfg, st, nil, nil, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientRoundTrip(t *testing.T) {
	srv := newTestService(t)
	c := New(srv.URL, testAPIKey)
	ctx := context.Background()

	created, err := c.CreateBriefing(ctx, "web-development", model.BriefingData{Markdown: "# Test"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := c.GetBriefing(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "# Test", got.Data.Markdown)

	updated, err := c.UpdateBriefing(ctx, created.ID, model.BriefingData{Markdown: "# Updated"})
	require.NoError(t, err)
	assert.Equal(t, "# Updated", updated.Data.Markdown)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))
}

func TestClientNotFound(t *testing.T) {
	srv := newTestService(t)
	c := New(srv.URL, testAPIKey)

	_, err := c.GetBriefing(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestClientUnauthorized(t *testing.T) {
	srv := newTestService(t)
	c := New(srv.URL, "wrong-key")

	_, err := c.CreateBriefing(context.Background(), "web-development", model.BriefingData{Markdown: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 401")
}

func TestClientGenerate(t *testing.T) {
	srv := newTestService(t)
	c := New(srv.URL, testAPIKey)

	md, err := c.Generate(context.Background(), "tech-product-saas", model.AnswerSet{
		"product-name": model.Text("LaunchPad"),
	})
	require.NoError(t, err)
	assert.Contains(t, md, "LaunchPad")
}
