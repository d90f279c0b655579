package session

import (
	"context"
	"sync"
)

// Tracker keeps at most one in-flight load per view.
type Tracker struct {
	mut      sync.Mutex
	seq      uint64
	inflight map[Page]*Handle
}

// Handle identifies one tracked load. A handle stops being current when a newer
// load for its view begins, when another view is navigated to, or on Release.
type Handle struct {
	view    Page
	seq     uint64
	ctx     context.Context
	cancel  context.CancelFunc
	tracker *Tracker
}

func NewTracker() *Tracker {
	return &Tracker{inflight: make(map[Page]*Handle)}
}

// Begin starts a load for view, canceling the previous load of the same view.
func (t *Tracker) Begin(parent context.Context, view Page) *Handle {
	ctx, cancel := context.WithCancel(parent)
	t.mut.Lock()
	defer t.mut.Unlock()
	if prev, ok := t.inflight[view]; ok {
		prev.cancel()
	}
	t.seq++
	h := &Handle{view: view, seq: t.seq, ctx: ctx, cancel: cancel, tracker: t}
	t.inflight[view] = h
	return h
}

// CancelOthers cancels the in-flight loads of every view but view.
func (t *Tracker) CancelOthers(view Page) {
	t.mut.Lock()
	defer t.mut.Unlock()
	for v, h := range t.inflight {
		if v == view {
			continue
		}
		h.cancel()
		delete(t.inflight, v)
	}
}

func (t *Tracker) CancelAll() {
	t.mut.Lock()
	defer t.mut.Unlock()
	for v, h := range t.inflight {
		h.cancel()
		delete(t.inflight, v)
	}
}

// Len returns the number of in-flight loads.
func (t *Tracker) Len() int {
	t.mut.Lock()
	defer t.mut.Unlock()
	return len(t.inflight)
}

func (h *Handle) Context() context.Context {
	return h.ctx
}

func (h *Handle) View() Page {
	return h.view
}

// Current reports whether h is still the live load for its view.
func (h *Handle) Current() bool {
	h.tracker.mut.Lock()
	defer h.tracker.mut.Unlock()
	return h.currentLocked()
}

func (h *Handle) currentLocked() bool {
	live, ok := h.tracker.inflight[h.view]
	return ok && live.seq == h.seq && h.ctx.Err() == nil
}

// Release ends the load and frees its context. Releasing a superseded handle
// leaves the newer load untouched.
func (h *Handle) Release() {
	h.tracker.mut.Lock()
	defer h.tracker.mut.Unlock()
	if live, ok := h.tracker.inflight[h.view]; ok && live.seq == h.seq {
		delete(h.tracker.inflight, h.view)
	}
	h.cancel()
}
