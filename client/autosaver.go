package client

import (
	"context"
	"sync"

	"github.com/brieffast/brieffast-server/internal/model"
)

// briefingSaver is the slice of Client the AutoSaver needs.
type briefingSaver interface {
	UpdateBriefing(ctx context.Context, id string, data model.BriefingData) (*model.Briefing, error)
}

// AutoSaver serializes edit saves for one briefing. At most one save is in
// flight; edits arriving during a save are coalesced into a single pending
// payload that is saved as soon as the current save completes, so the last
// edit always reaches the server.
type AutoSaver struct {
	saver briefingSaver
	id    string

	mu      sync.Mutex
	idle    *sync.Cond
	pending *model.BriefingData
	saving  bool

	// OnError is called for each failed save. The pending payload is not
	// retried; the next edit is the retry.
	OnError func(error)
}

func NewAutoSaver(saver briefingSaver, briefingID string) *AutoSaver {
	a := &AutoSaver{saver: saver, id: briefingID}
	a.idle = sync.NewCond(&a.mu)
	return a
}

// Save records data as the latest state and triggers a save. If a save is
// already running, data replaces any earlier pending payload.
func (a *AutoSaver) Save(data model.BriefingData) {
	a.mu.Lock()
	a.pending = &data
	if a.saving {
		a.mu.Unlock()
		return
	}
	a.saving = true
	a.mu.Unlock()
	go a.drain()
}

func (a *AutoSaver) drain() {
	for {
		a.mu.Lock()
		next := a.pending
		a.pending = nil
		if next == nil {
			a.saving = false
			a.idle.Broadcast()
			a.mu.Unlock()
			return
		}
		a.mu.Unlock()

		if _, err := a.saver.UpdateBriefing(context.Background(), a.id, *next); err != nil {
			if a.OnError != nil {
				a.OnError(err)
			}
		}
	}
}

// Flush blocks until no save is running and nothing is pending.
func (a *AutoSaver) Flush() {
	a.mu.Lock()
	for a.saving || a.pending != nil {
		a.idle.Wait()
	}
	a.mu.Unlock()
}
