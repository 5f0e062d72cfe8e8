package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brieffast/brieffast-server/internal/model"
)

// slowSaver records saved payloads and can block mid-save to let the test
// pile up edits behind an in-flight request.
type slowSaver struct {
	mu      sync.Mutex
	saved   []string
	entered chan struct{}
	gate    chan struct{}
	failing bool
}

func (s *slowSaver) UpdateBriefing(ctx context.Context, id string, data model.BriefingData) (*model.Briefing, error) {
	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	s.saved = append(s.saved, data.Markdown)
	s.mu.Unlock()
	if s.failing {
		return nil, errors.New("network down")
	}
	return &model.Briefing{ID: id, Data: data}, nil
}

func (s *slowSaver) markdowns() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.saved...)
}

func TestAutoSaverSavesLatestEdit(t *testing.T) {
	saver := &slowSaver{entered: make(chan struct{}, 4), gate: make(chan struct{})}
	a := NewAutoSaver(saver, "b1")

	a.Save(model.BriefingData{Markdown: "v1"})
	<-saver.entered
	// v1 is now blocked in flight; these arrive during the save.
	a.Save(model.BriefingData{Markdown: "v2"})
	a.Save(model.BriefingData{Markdown: "v3"})

	close(saver.gate)
	a.Flush()

	got := saver.markdowns()
	require.NotEmpty(t, got)
	assert.Equal(t, "v1", got[0])
	// Intermediate edits coalesce; the final state always lands.
	assert.Equal(t, "v3", got[len(got)-1])
	assert.LessOrEqual(t, len(got), 2)
}

func TestAutoSaverSequentialSaves(t *testing.T) {
	saver := &slowSaver{}
	a := NewAutoSaver(saver, "b1")

	for i := 1; i <= 3; i++ {
		a.Save(model.BriefingData{Markdown: fmt.Sprintf("v%d", i)})
		a.Flush()
	}
	assert.Equal(t, []string{"v1", "v2", "v3"}, saver.markdowns())
}

func TestAutoSaverReportsErrors(t *testing.T) {
	saver := &slowSaver{failing: true}
	a := NewAutoSaver(saver, "b1")

	errCh := make(chan error, 1)
	a.OnError = func(err error) { errCh <- err }

	a.Save(model.BriefingData{Markdown: "v1"})
	a.Flush()

	select {
	case err := <-errCh:
		assert.EqualError(t, err, "network down")
	case <-time.After(time.Second):
		t.Fatal("expected OnError callback")
	}
}

func TestAutoSaverFlushOnIdle(t *testing.T) {
	a := NewAutoSaver(&slowSaver{}, "b1")
	done := make(chan struct{})
	go func() {
		a.Flush()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Flush should return immediately when idle")
	}
}
