package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"pongadmin/internal/backend"
	"pongadmin/internal/parser"
	"pongadmin/internal/session"
	"pongadmin/internal/view"

	"github.com/gorilla/mux"
)

// alertText is the localized alert for key followed by the backend's message.
func alertText(pc view.PageContext, key string, err error) string {
	alert := view.Alert(pc.Loc, key)
	if msg := backend.MessageOf(err); msg != "" {
		alert = fmt.Sprintf("%s (%s)", alert, msg)
	}
	return alert
}

// succeed broadcasts the change to the session's other tabs and reloads the
// first page of the collection with a notice.
func (s *AdminServer) succeed(writer http.ResponseWriter, request *http.Request, page session.Page, notice string) {
	sess := sessionFrom(request)
	delivered := s.ConnStore.Broadcast(sess.Id, parser.NewReloadEvent(string(page)))
	s.Logger.Debug(fmt.Sprintf("Reload of %s pushed to %d connections of session %s", page, delivered, sess.Id))
	values := url.Values{"page": {"1"}, "notice": {notice}}
	s.redirect(writer, request, page.Path()+"?"+values.Encode())
}

func (s *AdminServer) parseForm(writer http.ResponseWriter, request *http.Request) bool {
	request.Body = http.MaxBytesReader(writer, request.Body, MAX_FORM_LEN)
	if err := request.ParseForm(); err != nil {
		s.Logger.Error("Failed to parse form", err)
		s.sendResponse(writer, nil, http.StatusBadRequest)
		return false
	}
	return true
}

func (s *AdminServer) UserDetail(writer http.ResponseWriter, request *http.Request) {
	userId := mux.Vars(request)["userId"]
	sess := sessionFrom(request)
	user, err := s.Api.UserInfo(request.Context(), sess.Token(), userId)
	if err != nil {
		s.Logger.Error(fmt.Sprintf("Failed to load user %s", userId), err)
		s.redirect(writer, request, "/users?"+url.Values{"alert": {view.ALERT_USER_LOAD_FAILED}}.Encode())
		return
	}
	if user.Key() == "" {
		user.Id = parser.Text(userId)
	}
	pc := s.pageContext(request, session.PageUsers)
	s.render(writer, http.StatusOK, "user", view.NewUserModal(pc, *user))
}

func (s *AdminServer) UpdateUser(writer http.ResponseWriter, request *http.Request) {
	userId := mux.Vars(request)["userId"]
	sess := sessionFrom(request)
	if !s.parseForm(writer, request) {
		return
	}
	form := request.PostForm
	update := parser.UserUpdate{
		Username:      strings.TrimSpace(form.Get("username")),
		PhoneNumber:   strings.TrimSpace(form.Get("phone_number")),
		StatusMessage: form.Get("status_message"),
		IsAdmin:       form.Get("is_admin") != "",
	}
	s.Logger.Info(fmt.Sprintf("Updating user %s from session %s", userId, sess.Id))
	if _, err := s.Api.UpdateUser(request.Context(), sess.Token(), userId, update); err != nil {
		pc := s.pageContext(request, session.PageUsers)
		pc.Alert = alertText(pc, view.ALERT_USER_UPDATE_FAILED, err)
		modal := view.NewUserModal(pc, parser.User{
			Id:            parser.Text(userId),
			Username:      update.Username,
			StudentId:     parser.Text(form.Get("student_id")),
			PhoneNumber:   update.PhoneNumber,
			StatusMessage: update.StatusMessage,
			IsAdmin:       parser.NewAdminFlag(update.IsAdmin),
		})
		s.render(writer, http.StatusOK, "user", modal)
		return
	}
	s.succeed(writer, request, session.PageUsers, view.NOTICE_USER_UPDATED)
}

func (s *AdminServer) ConfirmDeleteUser(writer http.ResponseWriter, request *http.Request) {
	userId := url.PathEscape(mux.Vars(request)["userId"])
	pc := s.pageContext(request, session.PageUsers)
	s.render(writer, http.StatusOK, "confirm", view.Confirm(pc, view.CONFIRM_DELETE_USER, "/users/"+userId+"/delete", "/users/"+userId))
}

func (s *AdminServer) DeleteUser(writer http.ResponseWriter, request *http.Request) {
	userId := mux.Vars(request)["userId"]
	sess := sessionFrom(request)
	s.Logger.Info(fmt.Sprintf("Deleting user %s from session %s", userId, sess.Id))
	if _, err := s.Api.DeleteUser(request.Context(), sess.Token(), userId); err != nil {
		escaped := url.PathEscape(userId)
		pc := s.pageContext(request, session.PageUsers)
		pc.Alert = alertText(pc, view.ALERT_USER_DELETE_FAILED, err)
		s.render(writer, http.StatusOK, "confirm", view.Confirm(pc, view.CONFIRM_DELETE_USER, "/users/"+escaped+"/delete", "/users/"+escaped))
		return
	}
	s.succeed(writer, request, session.PageUsers, view.NOTICE_USER_DELETED)
}

func (s *AdminServer) ConfirmDeleteGame(writer http.ResponseWriter, request *http.Request) {
	gameId := url.PathEscape(mux.Vars(request)["gameId"])
	pc := s.pageContext(request, session.PageGames)
	s.render(writer, http.StatusOK, "confirm", view.Confirm(pc, view.CONFIRM_DELETE_GAME, "/games/"+gameId+"/delete", "/games"))
}

func (s *AdminServer) DeleteGame(writer http.ResponseWriter, request *http.Request) {
	gameId := mux.Vars(request)["gameId"]
	sess := sessionFrom(request)
	s.Logger.Info(fmt.Sprintf("Deleting game %s from session %s", gameId, sess.Id))
	if _, err := s.Api.DeleteGame(request.Context(), sess.Token(), gameId); err != nil {
		pc := s.pageContext(request, session.PageGames)
		pc.Alert = alertText(pc, view.ALERT_GAME_DELETE_FAILED, err)
		s.render(writer, http.StatusOK, "confirm", view.Confirm(pc, view.CONFIRM_DELETE_GAME, "/games/"+url.PathEscape(gameId)+"/delete", "/games"))
		return
	}
	s.succeed(writer, request, session.PageGames, view.NOTICE_GAME_DELETED)
}

func (s *AdminServer) PostDetail(writer http.ResponseWriter, request *http.Request) {
	postId := mux.Vars(request)["postId"]
	sess := sessionFrom(request)
	post, err := s.Api.GetPost(request.Context(), sess.Token(), postId)
	if err != nil {
		s.Logger.Error(fmt.Sprintf("Failed to load post %s", postId), err)
		s.redirect(writer, request, "/posts?"+url.Values{"alert": {view.ALERT_POST_LOAD_FAILED}}.Encode())
		return
	}
	if post.Key() == "" {
		post.Id = parser.Text(postId)
	}
	pc := s.pageContext(request, session.PagePosts)
	s.render(writer, http.StatusOK, "post", view.NewPostModal(pc, *post))
}

func (s *AdminServer) ConfirmDeletePost(writer http.ResponseWriter, request *http.Request) {
	postId := url.PathEscape(mux.Vars(request)["postId"])
	pc := s.pageContext(request, session.PagePosts)
	s.render(writer, http.StatusOK, "confirm", view.Confirm(pc, view.CONFIRM_DELETE_POST, "/posts/"+postId+"/delete", "/posts/"+postId))
}

// DeletePost sends the administrator's own id as the requesting user.
func (s *AdminServer) DeletePost(writer http.ResponseWriter, request *http.Request) {
	postId := mux.Vars(request)["postId"]
	sess := sessionFrom(request)
	requesterId := sess.Snapshot().User.Key()
	s.Logger.Info(fmt.Sprintf("Deleting post %s from session %s", postId, sess.Id))
	if _, err := s.Api.DeletePost(request.Context(), sess.Token(), postId, requesterId); err != nil {
		escaped := url.PathEscape(postId)
		pc := s.pageContext(request, session.PagePosts)
		pc.Alert = alertText(pc, view.ALERT_POST_DELETE_FAILED, err)
		s.render(writer, http.StatusOK, "confirm", view.Confirm(pc, view.CONFIRM_DELETE_POST, "/posts/"+escaped+"/delete", "/posts/"+escaped))
		return
	}
	s.succeed(writer, request, session.PagePosts, view.NOTICE_POST_DELETED)
}
