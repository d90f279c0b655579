// Package session owns the per-browser admin sessions: login, token restore
// on first contact, logout and the tracking of in-flight view loads.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pongadmin/internal/backend"
	"pongadmin/internal/db"
	"pongadmin/internal/logger"
	"pongadmin/internal/parser"
	"pongadmin/internal/state"
)

type Controller struct {
	api      backend.API
	storage  db.Repository
	sessions state.StateStore[*Session]
	logger   logger.Logger
	// Clock is used for session creation times and token expiry.
	Clock func() time.Time
}

func NewController(api backend.API, storage db.Repository, log logger.Logger) *Controller {
	return &Controller{
		api:      api,
		storage:  storage,
		sessions: state.NewInMemoryStore[*Session](),
		logger:   log,
		Clock:    time.Now,
	}
}

// Open returns the session for id, creating it on first contact.
func (c *Controller) Open(id string) (*Session, bool) {
	s, created := c.sessions.GetOrCreate(id, func() *Session {
		return New(id, c.Clock())
	})
	if created {
		c.logger.Debug(fmt.Sprintf("Created session %s", id))
	}
	return s, created
}

func (c *Controller) Lookup(id string) (*Session, error) {
	return c.sessions.GetState(id)
}

// Len returns the number of live sessions.
func (c *Controller) Len() int {
	return c.sessions.Len()
}

// Login authenticates against the backend and admits only administrators.
// The token is stored before the profile is fetched and cleared again on any
// later failure.
func (c *Controller) Login(ctx context.Context, s *Session, studentId, password string) error {
	resp, err := c.api.Login(ctx, studentId, password)
	if err != nil {
		c.logger.Info(fmt.Sprintf("Login for student %s failed on session %s", studentId, s.Id))
		return err
	}
	token := resp.AccessToken
	if err := c.storage.SetItem(s.Id, db.ADMIN_TOKEN_KEY, token); err != nil {
		c.logger.Error(fmt.Sprintf("Failed to store token for session %s", s.Id), err)
		return fmt.Errorf("store admin token: %w", err)
	}

	userId := ""
	if resp.User != nil {
		userId = resp.User.UserId.String()
		if userId == "" {
			userId = resp.User.Id.String()
		}
	}
	if userId == "" {
		if claims, err := ReadClaims(token); err == nil {
			userId = claims.Subject
		}
	}
	profile, err := c.identify(ctx, token, userId)
	if err != nil {
		c.forget(s)
		return err
	}
	if err := c.admit(s, token, profile); err != nil {
		return err
	}
	c.logger.Info(fmt.Sprintf("Administrator %s logged in on session %s", profile.Key(), s.Id))
	return nil
}

// Restore validates the token stored for the session and authenticates the
// session with it. Any failure other than cancellation clears the stored token.
func (c *Controller) Restore(ctx context.Context, s *Session) error {
	s.restoring.Lock()
	defer s.restoring.Unlock()
	if s.Authenticated() {
		return nil
	}
	token, ok := c.storage.GetItem(s.Id, db.ADMIN_TOKEN_KEY)
	if !ok || token == "" {
		return ErrNoToken
	}

	subject := ""
	claims, err := ReadClaims(token)
	if err == nil {
		if claims.Expired(c.Clock()) {
			c.logger.Info(fmt.Sprintf("Stored token for session %s expired at %s", s.Id, claims.ExpiresAt.Format(time.RFC3339)))
			c.forget(s)
			return ErrTokenExpired
		}
		subject = claims.Subject
	}
	profile, err := c.identify(ctx, token, subject)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.forget(s)
		}
		return err
	}
	if err := c.admit(s, token, profile); err != nil {
		return err
	}
	c.logger.Info(fmt.Sprintf("Restored administrator %s on session %s", profile.Key(), s.Id))
	return nil
}

// Logout tears the session down and removes everything stored for it.
func (c *Controller) Logout(s *Session) error {
	s.reset()
	c.sessions.DeleteState(s.Id)
	if err := c.storage.RemoveSession(s.Id); err != nil {
		c.logger.Error(fmt.Sprintf("Failed to clear storage of session %s", s.Id), err)
		return err
	}
	c.logger.Info(fmt.Sprintf("Session %s logged out", s.Id))
	return nil
}

// identify fetches the profile of userId, asking the who-am-i endpoint when
// the user id is unknown.
func (c *Controller) identify(ctx context.Context, token, userId string) (*parser.User, error) {
	if userId != "" {
		return c.api.UserInfo(ctx, token, userId)
	}
	user, err := c.api.WhoAmI(ctx, token)
	if errors.Is(err, backend.ErrNoWhoami) {
		return nil, ErrUnidentified
	}
	return user, err
}

func (c *Controller) admit(s *Session, token string, profile *parser.User) error {
	if profile == nil || !profile.IsAdmin.Truthy() {
		value := parser.AdminFlag{}.String()
		if profile != nil {
			value = profile.IsAdmin.String()
		}
		c.logger.Info(fmt.Sprintf("Rejected non-admin profile on session %s (is_admin=%s)", s.Id, value))
		c.forget(s)
		return &AuthorizationError{Value: value}
	}
	s.authenticate(token, profile)
	return nil
}

// forget drops the credentials of s from memory and from storage, so a
// session never stays authenticated on a token that is no longer stored.
func (c *Controller) forget(s *Session) {
	s.reset()
	if err := c.storage.RemoveItem(s.Id, db.ADMIN_TOKEN_KEY); err != nil {
		c.logger.Error(fmt.Sprintf("Failed to clear token of session %s", s.Id), err)
	}
}
