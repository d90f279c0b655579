package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"pongadmin/internal/i18n"
	"pongadmin/internal/session"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type contextKey int

const (
	sessionKey contextKey = iota
	localeKey
)

type locale struct {
	tag     language.Tag
	printer *message.Printer
}

func (l locale) lang() string {
	base, _ := l.tag.Base()
	return base.String()
}

// withSession attaches the browser's session, issuing a cookie on first contact.
func (s *AdminServer) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		sessionId := ""
		if cookie, err := request.Cookie(SESSION_COOKIE_NAME); err == nil {
			if parsed, err := uuid.Parse(cookie.Value); err == nil {
				sessionId = parsed.String()
			}
		}
		if sessionId == "" {
			sessionId = uuid.NewString()
			s.setSessionCookie(writer, sessionId)
		}
		sess, created := s.Sessions.Open(sessionId)
		if created {
			s.Logger.Debug(fmt.Sprintf("First contact from session %s", sessionId))
		}
		ctx := context.WithValue(request.Context(), sessionKey, sess)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (s *AdminServer) withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		tag, persist := i18n.ResolveTag(request, s.defaultLang)
		if persist {
			i18n.SetLanguageCookie(writer, tag)
		}
		l := locale{tag: tag, printer: i18n.Printer(tag)}
		ctx := context.WithValue(request.Context(), localeKey, l)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// requireAdmin restores the stored token on first contact and sends
// unauthenticated browsers to the login page.
func (s *AdminServer) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		sess := sessionFrom(request)
		if !sess.Authenticated() {
			err := s.Sessions.Restore(request.Context(), sess)
			if err != nil {
				if !errors.Is(err, session.ErrNoToken) {
					s.Logger.Info(fmt.Sprintf("Could not restore session %s: %s", sess.Id, err))
				}
				if request.URL.Path == "/events" {
					s.sendResponse(writer, nil, http.StatusUnauthorized)
					return
				}
				s.redirect(writer, request, "/login")
				return
			}
		}
		next.ServeHTTP(writer, request)
	})
}

func (s *AdminServer) setSessionCookie(writer http.ResponseWriter, sessionId string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     SESSION_COOKIE_NAME,
		Value:    sessionId,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AdminServer) clearSessionCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     SESSION_COOKIE_NAME,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionFrom(request *http.Request) *session.Session {
	sess, _ := request.Context().Value(sessionKey).(*session.Session)
	return sess
}

func localeFrom(request *http.Request) locale {
	l, ok := request.Context().Value(localeKey).(locale)
	if !ok {
		return locale{tag: i18n.Default(), printer: i18n.Printer(i18n.Default())}
	}
	return l
}
