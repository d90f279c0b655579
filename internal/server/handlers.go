package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"pongadmin/internal/parser"
	"pongadmin/internal/session"
	"pongadmin/internal/view"

	"golang.org/x/sync/errgroup"
)

func (s *AdminServer) pageContext(request *http.Request, page session.Page) view.PageContext {
	l := localeFrom(request)
	snap := sessionFrom(request).Snapshot()
	query := request.URL.Query()
	return view.NewPageContext(l.printer, l.lang(), page, snap.User).
		WithFlash(query.Get("notice"), query.Get("alert"))
}

func pageParam(query url.Values) int {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (s *AdminServer) LoginPage(writer http.ResponseWriter, request *http.Request) {
	sess := sessionFrom(request)
	if sess.Authenticated() || s.Sessions.Restore(request.Context(), sess) == nil {
		s.redirect(writer, request, "/")
		return
	}
	l := localeFrom(request)
	s.render(writer, http.StatusOK, "login", view.Login(view.LoginContext(l.printer, l.lang()), "", nil))
}

func (s *AdminServer) Login(writer http.ResponseWriter, request *http.Request) {
	sess := sessionFrom(request)
	l := localeFrom(request)
	request.Body = http.MaxBytesReader(writer, request.Body, MAX_FORM_LEN)
	if err := request.ParseForm(); err != nil {
		s.Logger.Error("Failed to parse login form", err)
		s.sendResponse(writer, nil, http.StatusBadRequest)
		return
	}
	studentId := strings.TrimSpace(request.PostForm.Get("student_id"))
	password := request.PostForm.Get("password")
	s.Logger.Info(fmt.Sprintf("Administrator login attempt on session %s", sess.Id))
	if err := s.Sessions.Login(request.Context(), sess, studentId, password); err != nil {
		s.render(writer, http.StatusOK, "login", view.Login(view.LoginContext(l.printer, l.lang()), studentId, err))
		return
	}
	s.redirect(writer, request, "/")
}

func (s *AdminServer) Logout(writer http.ResponseWriter, request *http.Request) {
	sess := sessionFrom(request)
	s.ConnStore.CloseSession(sess.Id)
	if err := s.Sessions.Logout(sess); err != nil {
		s.Logger.Error(fmt.Sprintf("Logout of session %s left stored data behind", sess.Id), err)
	}
	s.clearSessionCookie(writer)
	s.redirect(writer, request, "/login")
}

// Dashboard runs the three collection loads concurrently; each may fail alone.
func (s *AdminServer) Dashboard(writer http.ResponseWriter, request *http.Request) {
	sess := sessionFrom(request)
	handle := sess.Navigate(request.Context(), session.PageDashboard)
	defer handle.Release()
	ctx := handle.Context()
	token := sess.Token()

	var data view.DashboardData
	var group errgroup.Group
	group.Go(func() error {
		page, err := s.Api.ListUsers(ctx, token, parser.ListQuery{Page: 1})
		if err == nil {
			data.Users = page.Users
		}
		data.UsersErr = err
		return nil
	})
	group.Go(func() error {
		page, err := s.Api.ListGames(ctx, token, parser.GamesQuery{Page: 1})
		if err == nil {
			data.Games = page.Games
		}
		data.GamesErr = err
		return nil
	})
	group.Go(func() error {
		page, err := s.Api.ListPosts(ctx, token, parser.ListQuery{Page: 1})
		if err == nil {
			data.Posts = page.Posts
		}
		data.PostsErr = err
		return nil
	})
	group.Wait()

	if !sess.Commit(handle) {
		if s.discard(writer, request, sess.Id, handle) {
			return
		}
		data = view.DashboardData{
			UsersErr: session.ErrSuperseded,
			GamesErr: session.ErrSuperseded,
			PostsErr: session.ErrSuperseded,
		}
	}
	pc := s.pageContext(request, session.PageDashboard)
	s.render(writer, http.StatusOK, "dashboard", view.Dashboard(pc, data, s.Clock()))
}

func (s *AdminServer) Users(writer http.ResponseWriter, request *http.Request) {
	sess := sessionFrom(request)
	q := request.URL.Query()
	query := parser.ListQuery{Page: pageParam(q), Search: strings.TrimSpace(q.Get("search"))}
	handle := sess.Navigate(request.Context(), session.PageUsers)
	defer handle.Release()

	page, err := s.Api.ListUsers(handle.Context(), sess.Token(), query)
	if !sess.Commit(handle) {
		if s.discard(writer, request, sess.Id, handle) {
			return
		}
		page, err = nil, session.ErrSuperseded
	}
	pc := s.pageContext(request, session.PageUsers)
	s.render(writer, http.StatusOK, "collection", view.Users(pc, query, page, err))
}

func (s *AdminServer) Games(writer http.ResponseWriter, request *http.Request) {
	sess := sessionFrom(request)
	q := request.URL.Query()
	query := parser.GamesQuery{
		Page:      pageParam(q),
		StartDate: strings.TrimSpace(q.Get("start_date")),
		EndDate:   strings.TrimSpace(q.Get("end_date")),
	}
	handle := sess.Navigate(request.Context(), session.PageGames)
	defer handle.Release()

	page, err := s.Api.ListGames(handle.Context(), sess.Token(), query)
	if !sess.Commit(handle) {
		if s.discard(writer, request, sess.Id, handle) {
			return
		}
		page, err = nil, session.ErrSuperseded
	}
	pc := s.pageContext(request, session.PageGames)
	s.render(writer, http.StatusOK, "collection", view.Games(pc, query, page, err))
}

func (s *AdminServer) Posts(writer http.ResponseWriter, request *http.Request) {
	sess := sessionFrom(request)
	q := request.URL.Query()
	query := parser.ListQuery{Page: pageParam(q), Search: strings.TrimSpace(q.Get("search"))}
	handle := sess.Navigate(request.Context(), session.PagePosts)
	defer handle.Release()

	page, err := s.Api.ListPosts(handle.Context(), sess.Token(), query)
	if !sess.Commit(handle) {
		if s.discard(writer, request, sess.Id, handle) {
			return
		}
		page, err = nil, session.ErrSuperseded
	}
	pc := s.pageContext(request, session.PagePosts)
	s.render(writer, http.StatusOK, "collection", view.Posts(pc, query, page, err))
}
