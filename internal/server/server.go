// Package server is the dashboard's HTTP front end: it resolves the browser
// session, loads backend data through the session's request tracker and
// executes the view-models into HTML.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pongadmin/internal/backend"
	"pongadmin/internal/db"
	"pongadmin/internal/logger"
	"pongadmin/internal/session"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/text/language"
)

const (
	SESSION_COOKIE_NAME = "pongadmin_session"
	// STATUS_CLIENT_CLOSED_REQUEST answers loads that were superseded or
	// abandoned before their response could be rendered.
	STATUS_CLIENT_CLOSED_REQUEST = 499
	SHUTDOWN_TIMEOUT             = 10 * time.Second
	MAX_FORM_LEN                 = 64 << 10
)

type Options struct {
	Port          string
	DefaultLang   language.Tag
	SecureCookies bool
}

type AdminServer struct {
	Api           backend.API
	Sessions      *session.Controller
	Db            db.Repository
	Logger        logger.Logger
	Router        *mux.Router
	ConnStore     ConnectionStore
	Clock         func() time.Time
	port          string
	defaultLang   language.Tag
	secureCookies bool
	wssUpgrader   websocket.Upgrader
	templates     map[string]*template.Template
	httpServer    *http.Server
}

func NewAdminServer(opts Options, api backend.API, repo db.Repository, connStore ConnectionStore, log logger.Logger) (*AdminServer, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	defaultLang := opts.DefaultLang
	if defaultLang == language.Und {
		defaultLang = language.Korean
	}
	s := &AdminServer{
		Api:           api,
		Sessions:      session.NewController(api, repo, log.Named("session")),
		Db:            repo,
		Logger:        log,
		Router:        mux.NewRouter(),
		ConnStore:     connStore,
		Clock:         time.Now,
		port:          opts.Port,
		defaultLang:   defaultLang,
		secureCookies: opts.SecureCookies,
		wssUpgrader:   websocket.Upgrader{},
		templates:     templates,
	}
	s.routes()
	return s, nil
}

func (s *AdminServer) routes() {
	s.Router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)

	app := s.Router.NewRoute().Subrouter()
	app.Use(s.withSession, s.withLocale)
	app.HandleFunc("/login", s.LoginPage).Methods(http.MethodGet)
	app.HandleFunc("/login", s.Login).Methods(http.MethodPost)

	admin := app.NewRoute().Subrouter()
	admin.Use(s.requireAdmin)
	admin.HandleFunc("/logout", s.Logout).Methods(http.MethodPost)
	admin.HandleFunc("/", s.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/users", s.Users).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}", s.UserDetail).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}", s.UpdateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{userId}/delete", s.ConfirmDeleteUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}/delete", s.DeleteUser).Methods(http.MethodPost)
	admin.HandleFunc("/games", s.Games).Methods(http.MethodGet)
	admin.HandleFunc("/games/{gameId}/delete", s.ConfirmDeleteGame).Methods(http.MethodGet)
	admin.HandleFunc("/games/{gameId}/delete", s.DeleteGame).Methods(http.MethodPost)
	admin.HandleFunc("/posts", s.Posts).Methods(http.MethodGet)
	admin.HandleFunc("/posts/{postId}", s.PostDetail).Methods(http.MethodGet)
	admin.HandleFunc("/posts/{postId}/delete", s.ConfirmDeletePost).Methods(http.MethodGet)
	admin.HandleFunc("/posts/{postId}/delete", s.DeletePost).Methods(http.MethodPost)
	admin.HandleFunc("/events", s.Events).Methods(http.MethodGet)
}

func (s *AdminServer) UpgradeToWebsocket(writer http.ResponseWriter, request *http.Request) *websocket.Conn {
	conn, err := s.wssUpgrader.Upgrade(writer, request, nil)
	if err != nil {
		s.Logger.Error("Failed to upgrade to WS connection", err)
		return nil
	}
	return conn
}

// Run serves until Shutdown is called or the process is interrupted.
func (s *AdminServer) Run() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", s.port),
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.Logger.Info(fmt.Sprintf("Starting server on port %s", s.port))
	sigtermHandler := make(chan os.Signal, 1)
	signal.Notify(sigtermHandler, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigtermHandler
		s.Shutdown()
	}()
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Logger.Error(fmt.Sprintf("Failed to start server on port %s", s.port), err)
		return err
	}
	return nil
}

func (s *AdminServer) Shutdown() {
	s.Logger.Info("Shutting down server....")
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
		defer cancel()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.Logger.Error("Failed to drain connections", err)
		}
	}
	s.Db.CloseConnection()
	s.Logger.Info("Goodbye !")
}

func (s *AdminServer) sendResponse(writer http.ResponseWriter, responseBody []byte, status int) {
	writer.WriteHeader(status)
	if responseBody == nil {
		return
	}
	if _, err := writer.Write(responseBody); err != nil {
		s.Logger.Info("Failed to write response body")
	}
}

// render executes page with data and writes it with status.
func (s *AdminServer) render(writer http.ResponseWriter, status int, page string, data any) {
	tmpl, exists := s.templates[page]
	if !exists {
		s.Logger.Error(fmt.Sprintf("Unknown template %s", page), nil)
		s.sendResponse(writer, nil, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.Logger.Error(fmt.Sprintf("Failed to render %s", page), err)
		s.sendResponse(writer, nil, http.StatusInternalServerError)
		return
	}
	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.sendResponse(writer, buf.Bytes(), status)
}

// discard handles a load that lost to a newer one of the same browser. When
// the client is gone it answers 499 and reports true. A client still waiting,
// usually another tab, gets false and renders the load as failed.
func (s *AdminServer) discard(writer http.ResponseWriter, request *http.Request, sessionId string, handle *session.Handle) bool {
	if request.Context().Err() == nil {
		s.Logger.Debug(fmt.Sprintf("Superseded %s load of session %s rendered as failed", handle.View(), sessionId))
		return false
	}
	s.Logger.Debug(fmt.Sprintf("Discarded stale %s load of session %s", handle.View(), sessionId))
	s.sendResponse(writer, nil, STATUS_CLIENT_CLOSED_REQUEST)
	return true
}

func (s *AdminServer) redirect(writer http.ResponseWriter, request *http.Request, target string) {
	http.Redirect(writer, request, target, http.StatusSeeOther)
}

func (s *AdminServer) Health(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "application/json")
	body := fmt.Sprintf(`{"status":"ok","sessions":%d}`, s.Sessions.Len())
	s.sendResponse(writer, []byte(body), http.StatusOK)
}
