package session

import (
	"context"
	"sync"
	"time"

	"pongadmin/internal/parser"
)

// Session is the state of one browser: its bearer token, the authenticated
// administrator and the view currently shown.
type Session struct {
	Id        string
	CreatedAt time.Time

	mut         sync.RWMutex
	token       string
	user        *parser.User
	currentPage Page
	tracker     *Tracker
	// restoring serialises the first-contact token validation.
	restoring sync.Mutex
}

// Snapshot is a consistent copy of a session's fields for rendering.
type Snapshot struct {
	Id            string
	Authenticated bool
	User          parser.User
	CurrentPage   Page
}

func New(id string, now time.Time) *Session {
	return &Session{
		Id:          id,
		CreatedAt:   now,
		currentPage: PageDashboard,
		tracker:     NewTracker(),
	}
}

func (s *Session) Token() string {
	s.mut.RLock()
	defer s.mut.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	s.mut.RLock()
	defer s.mut.RUnlock()
	return s.token != "" && s.user != nil
}

func (s *Session) CurrentPage() Page {
	s.mut.RLock()
	defer s.mut.RUnlock()
	return s.currentPage
}

func (s *Session) Snapshot() Snapshot {
	s.mut.RLock()
	defer s.mut.RUnlock()
	snap := Snapshot{
		Id:            s.Id,
		Authenticated: s.token != "" && s.user != nil,
		CurrentPage:   s.currentPage,
	}
	if s.user != nil {
		snap.User = *s.user
	}
	return snap
}

// Navigate begins the load of page, canceling the loads of every other view
// and any earlier load of page itself.
func (s *Session) Navigate(parent context.Context, page Page) *Handle {
	s.tracker.CancelOthers(page)
	return s.tracker.Begin(parent, page)
}

// Commit makes the handle's view the current page. It returns false, leaving
// the session untouched, when the handle was superseded or canceled.
func (s *Session) Commit(h *Handle) bool {
	s.mut.Lock()
	defer s.mut.Unlock()
	if !h.Current() {
		return false
	}
	s.currentPage = h.view
	return true
}

func (s *Session) authenticate(token string, user *parser.User) {
	s.mut.Lock()
	defer s.mut.Unlock()
	s.token = token
	s.user = user
}

// reset drops the credentials, cancels every in-flight load and returns the
// session to the login view.
func (s *Session) reset() {
	s.tracker.CancelAll()
	s.mut.Lock()
	defer s.mut.Unlock()
	s.token = ""
	s.user = nil
	s.currentPage = PageDashboard
}
