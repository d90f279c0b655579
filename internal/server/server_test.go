package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"pongadmin/internal/backend"
	backendMocks "pongadmin/internal/backend/mocks"
	"pongadmin/internal/db"
	dbMocks "pongadmin/internal/db/mocks"
	"pongadmin/internal/logger"
	"pongadmin/internal/parser"
	connStoreMock "pongadmin/internal/server/mocks"
	"pongadmin/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"
)

type AdminServerTestSuite struct {
	suite.Suite
	apiMock       *backendMocks.API
	dbMock        *dbMocks.Repository
	connStoreMock *connStoreMock.ConnectionStore
	gs            *AdminServer
	server        *httptest.Server
	client        *http.Client
}

func (suite *AdminServerTestSuite) SetupTest() {
	suite.apiMock = backendMocks.NewAPI(suite.T())
	suite.dbMock = dbMocks.NewRepository(suite.T())
	suite.connStoreMock = connStoreMock.NewConnectionStore(suite.T())
	suite.gs = CreateMockAdminServer(suite.T(), suite.apiMock, suite.dbMock, suite.connStoreMock)
	suite.server = httptest.NewServer(suite.gs.Router)
	suite.client = newBrowser(suite.T())
}

func (suite *AdminServerTestSuite) TearDownTest() {
	suite.server.Close()
}

func TestAdminServerSuite(t *testing.T) {
	suite.Run(t, new(AdminServerTestSuite))
}

func CreateMockAdminServer(t *testing.T, api backend.API, repo db.Repository, connStore ConnectionStore) *AdminServer {
	gs, err := NewAdminServer(Options{Port: "9999", DefaultLang: language.Korean}, api, repo, connStore, logger.NewWithWriter("test_logger", io.Discard))
	if err != nil {
		t.Fatalf("Failed to create admin server: %v", err)
	}
	return gs
}

// newBrowser returns a client that keeps cookies and does not follow redirects.
func newBrowser(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func ReadResponseBody(response *http.Response) (string, error) {
	defer response.Body.Close()
	bytesRead, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}
	return string(bytesRead), nil
}

func adminProfile() *parser.User {
	var u parser.User
	if err := json.Unmarshal([]byte(`{"id": 1, "username": "root", "is_admin": true}`), &u); err != nil {
		panic(err)
	}
	return &u
}

func (suite *AdminServerTestSuite) get(path string) (*http.Response, string) {
	resp, err := suite.client.Get(suite.server.URL + path)
	suite.Require().NoError(err, "Failed to execute GET %s", path)
	body, err := ReadResponseBody(resp)
	suite.Require().NoError(err)
	return resp, body
}

func (suite *AdminServerTestSuite) post(path string, form url.Values) (*http.Response, string) {
	resp, err := suite.client.PostForm(suite.server.URL+path, form)
	suite.Require().NoError(err, "Failed to execute POST %s", path)
	body, err := ReadResponseBody(resp)
	suite.Require().NoError(err)
	return resp, body
}

func (suite *AdminServerTestSuite) sessionId() string {
	u, _ := url.Parse(suite.server.URL)
	for _, c := range suite.client.Jar.Cookies(u) {
		if c.Name == SESSION_COOKIE_NAME {
			return c.Value
		}
	}
	return ""
}

func (suite *AdminServerTestSuite) login() {
	suite.apiMock.On("Login", mock.Anything, "2024001", "pw").Return(&parser.LoginResponse{
		AccessToken: "tok",
		User:        &parser.User{UserId: "1"},
	}, nil).Once()
	suite.dbMock.On("SetItem", mock.Anything, db.ADMIN_TOKEN_KEY, "tok").Return(nil).Once()
	suite.apiMock.On("UserInfo", mock.Anything, "tok", "1").Return(adminProfile(), nil).Once()

	resp, _ := suite.post("/login", url.Values{"student_id": {"2024001"}, "password": {"pw"}})
	suite.Require().Equal(http.StatusSeeOther, resp.StatusCode)
	suite.Require().Equal("/", resp.Header.Get("Location"))
}

func (suite *AdminServerTestSuite) TestHealth() {
	resp, body := suite.get("/healthz")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.JSONEq(`{"status":"ok","sessions":0}`, body)
}

func (suite *AdminServerTestSuite) TestUnauthenticatedPagesRedirectToLogin() {
	suite.dbMock.On("GetItem", mock.Anything, db.ADMIN_TOKEN_KEY).Return("", false)
	for _, path := range []string{"/", "/users", "/games", "/posts", "/users/1", "/posts/1"} {
		suite.Run("Test "+path, func() {
			resp, _ := suite.get(path)
			suite.Equal(http.StatusSeeOther, resp.StatusCode)
			suite.Equal("/login", resp.Header.Get("Location"))
		})
	}
	suite.NotEmpty(suite.sessionId(), "first contact issues a session cookie")
}

func (suite *AdminServerTestSuite) TestLoginPage() {
	suite.dbMock.On("GetItem", mock.Anything, db.ADMIN_TOKEN_KEY).Return("", false)
	resp, body := suite.get("/login")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, "관리자 로그인")
	suite.Contains(body, `name="student_id"`)

	resp, body = suite.get("/login?lang=en")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, "Administrator sign in")
}

func (suite *AdminServerTestSuite) TestLoginFailures() {
	tests := []struct {
		description string
		setup       func()
		expected    string
	}{
		{
			"Test with wrong password",
			func() {
				suite.apiMock.On("Login", mock.Anything, "2024001", "pw").
					Return(nil, &backend.Error{Op: "login", Kind: backend.ErrRejected, Message: "bad credentials"}).Once()
			},
			"bad credentials",
		},
		{
			"Test with backend down",
			func() {
				suite.apiMock.On("Login", mock.Anything, "2024001", "pw").
					Return(nil, &backend.Error{Op: "login", Kind: backend.ErrTransport}).Once()
			},
			"서버에 연결할 수 없습니다.",
		},
		{
			"Test with non admin profile",
			func() {
				var member parser.User
				suite.Require().NoError(json.Unmarshal([]byte(`{"id": 2, "is_admin": false}`), &member))
				suite.apiMock.On("Login", mock.Anything, "2024001", "pw").
					Return(&parser.LoginResponse{AccessToken: "tok", User: &parser.User{UserId: "2"}}, nil).Once()
				suite.dbMock.On("SetItem", mock.Anything, db.ADMIN_TOKEN_KEY, "tok").Return(nil).Once()
				suite.apiMock.On("UserInfo", mock.Anything, "tok", "2").Return(&member, nil).Once()
				suite.dbMock.On("RemoveItem", mock.Anything, db.ADMIN_TOKEN_KEY).Return(nil).Once()
			},
			"관리자 권한이 없습니다. (is_admin 값: false)",
		},
	}
	for _, tc := range tests {
		suite.Run(tc.description, func() {
			tc.setup()
			resp, body := suite.post("/login", url.Values{"student_id": {"2024001"}, "password": {"pw"}})
			suite.Equal(http.StatusOK, resp.StatusCode)
			suite.Contains(body, tc.expected)
			suite.Contains(body, `value="2024001"`)
		})
	}
}

func (suite *AdminServerTestSuite) TestLoginPageRedirectsWhenAuthenticated() {
	suite.login()
	resp, _ := suite.get("/login")
	suite.Equal(http.StatusSeeOther, resp.StatusCode)
	suite.Equal("/", resp.Header.Get("Location"))
}

func (suite *AdminServerTestSuite) TestUsersPage() {
	suite.login()
	var users []parser.User
	suite.Require().NoError(json.Unmarshal([]byte(`[{"id": 7, "username": "kim", "is_admin": "t"}, {"id": 8}]`), &users))
	suite.apiMock.On("ListUsers", mock.Anything, "tok", parser.ListQuery{Page: 3, Search: "kim"}).
		Return(&parser.UsersPage{Users: users, TotalPages: 4}, nil).Once()

	resp, body := suite.get("/users?page=3&search=kim")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, "kim")
	suite.Contains(body, "이름 없음")
	suite.Contains(body, `href="/users/7"`)
	suite.Contains(body, `aria-current="page"`)
	suite.Contains(body, `href="/users?page=4&amp;search=kim"`)
}

func (suite *AdminServerTestSuite) TestCollectionPlaceholders() {
	tests := []struct {
		description string
		path        string
		setup       func()
		colspan     string
		text        string
	}{
		{
			"Test empty users", "/users",
			func() {
				suite.apiMock.On("ListUsers", mock.Anything, "tok", parser.ListQuery{Page: 1}).Return(&parser.UsersPage{}, nil).Once()
			},
			`colspan="9"`, "데이터가 없습니다.",
		},
		{
			"Test failed games", "/games?start_date=2024-01-01&end_date=2024-02-01",
			func() {
				suite.apiMock.On("ListGames", mock.Anything, "tok", parser.GamesQuery{Page: 1, StartDate: "2024-01-01", EndDate: "2024-02-01"}).
					Return(nil, &backend.Error{Op: "list games", Status: 404, Kind: backend.ErrRejected}).Once()
			},
			`colspan="6"`, "데이터 로드 실패",
		},
		{
			"Test failed posts", "/posts",
			func() {
				suite.apiMock.On("ListPosts", mock.Anything, "tok", parser.ListQuery{Page: 1}).
					Return(nil, &backend.Error{Op: "list posts", Kind: backend.ErrDecode}).Once()
			},
			`colspan="8"`, "데이터 로드 실패",
		},
	}
	suite.login()
	for _, tc := range tests {
		suite.Run(tc.description, func() {
			tc.setup()
			resp, body := suite.get(tc.path)
			suite.Equal(http.StatusOK, resp.StatusCode)
			suite.Contains(body, tc.colspan)
			suite.Contains(body, tc.text)
			suite.Equal(1, strings.Count(body, "<td colspan="), "exactly one placeholder row")
		})
	}
}

func (suite *AdminServerTestSuite) TestDashboardPanelsFailIndependently() {
	suite.login()
	var games []parser.Game
	suite.Require().NoError(json.Unmarshal([]byte(`[{"id": 1, "winner_name": "lee", "loser_name": "park", "plus_score": 3}]`), &games))
	suite.apiMock.On("ListUsers", mock.Anything, "tok", parser.ListQuery{Page: 1}).
		Return(nil, &backend.Error{Op: "list users", Kind: backend.ErrTransport})
	suite.apiMock.On("ListGames", mock.Anything, "tok", parser.GamesQuery{Page: 1}).Return(&parser.GamesPage{Games: games}, nil)
	suite.apiMock.On("ListPosts", mock.Anything, "tok", parser.ListQuery{Page: 1}).Return(&parser.PostsPage{}, nil)

	resp, body := suite.get("/")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, "데이터 로드 실패")
	suite.Contains(body, "lee")
	suite.Contains(body, "3.0")
}

func (suite *AdminServerTestSuite) TestSupersededLoadFailsInWaitingTab() {
	suite.login()
	started := make(chan struct{})
	suite.apiMock.On("ListUsers", mock.Anything, "tok", parser.ListQuery{Page: 1}).Run(func(args mock.Arguments) {
		close(started)
		<-args.Get(0).(context.Context).Done()
	}).Return(nil, context.Canceled).Once()
	suite.apiMock.On("ListGames", mock.Anything, "tok", parser.GamesQuery{Page: 1}).
		Return(&parser.GamesPage{TotalPages: 1}, nil).Once()

	type result struct {
		status int
		body   string
	}
	stale := make(chan result, 1)
	go func() {
		resp, err := suite.client.Get(suite.server.URL + "/users?page=1")
		if err != nil {
			stale <- result{}
			return
		}
		body, _ := ReadResponseBody(resp)
		stale <- result{resp.StatusCode, body}
	}()
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		suite.FailNow("first load never started")
	}

	resp, _ := suite.get("/games")
	suite.Equal(http.StatusOK, resp.StatusCode)
	first := <-stale
	suite.Equal(http.StatusOK, first.status)
	suite.Contains(first.body, "데이터 로드 실패")
	suite.NotContains(first.body, `class="pagination"`)
}

func (suite *AdminServerTestSuite) TestDiscardAnswersGoneClients() {
	sess, _ := suite.gs.Sessions.Open(uuid.NewString())
	stale := sess.Navigate(context.Background(), session.PageUsers)
	defer stale.Release()
	fresh := sess.Navigate(context.Background(), session.PageUsers)
	defer fresh.Release()
	suite.False(sess.Commit(stale))

	waiting := httptest.NewRecorder()
	suite.False(suite.gs.discard(waiting, httptest.NewRequest(http.MethodGet, "/users", nil), sess.Id, stale))
	suite.Zero(waiting.Body.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gone := httptest.NewRecorder()
	suite.True(suite.gs.discard(gone, httptest.NewRequest(http.MethodGet, "/users", nil).WithContext(ctx), sess.Id, stale))
	suite.Equal(STATUS_CLIENT_CLOSED_REQUEST, gone.Code)
}

func (suite *AdminServerTestSuite) TestUserModal() {
	suite.login()
	var user parser.User
	suite.Require().NoError(json.Unmarshal([]byte(`{"id": 7, "username": "kim", "student_id": 2024007, "is_admin": 1}`), &user))
	suite.apiMock.On("UserInfo", mock.Anything, "tok", "7").Return(&user, nil).Once()
	resp, body := suite.get("/users/7")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, `value="kim"`)
	suite.Contains(body, `value="2024007" readonly`)
	suite.Contains(body, "checked")

	suite.apiMock.On("UserInfo", mock.Anything, "tok", "9").Return(nil, &backend.Error{Op: "user info", Status: 404, Kind: backend.ErrRejected}).Once()
	resp, _ = suite.get("/users/9")
	suite.Equal(http.StatusSeeOther, resp.StatusCode)
	suite.Equal("/users?alert=user_load_failed", resp.Header.Get("Location"))
}

func (suite *AdminServerTestSuite) TestUpdateUser() {
	suite.login()
	update := parser.UserUpdate{Username: "kim", PhoneNumber: "010-1234", StatusMessage: "hi", IsAdmin: true}
	suite.apiMock.On("UpdateUser", mock.Anything, "tok", "7", update).Return(&parser.MutationResponse{Success: true}, nil).Once()
	suite.connStoreMock.On("Broadcast", suite.sessionId(), parser.NewReloadEvent("users")).Return(1).Once()

	resp, _ := suite.post("/users/7", url.Values{
		"username":       {"kim"},
		"phone_number":   {"010-1234"},
		"status_message": {"hi"},
		"is_admin":       {"true"},
	})
	suite.Equal(http.StatusSeeOther, resp.StatusCode)
	suite.Equal("/users?notice=user_updated&page=1", resp.Header.Get("Location"))
}

func (suite *AdminServerTestSuite) TestUpdateUserFailureKeepsModal() {
	suite.login()
	update := parser.UserUpdate{Username: "kim"}
	suite.apiMock.On("UpdateUser", mock.Anything, "tok", "7", update).
		Return(&parser.MutationResponse{Message: "taken"}, &backend.Error{Op: "update user", Kind: backend.ErrRejected, Message: "taken"}).Once()

	resp, body := suite.post("/users/7", url.Values{"username": {"kim"}})
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, "사용자 정보 업데이트에 실패했습니다. (taken)")
	suite.Contains(body, "window.alert(")
	suite.Contains(body, `value="kim"`)
	suite.connStoreMock.AssertNotCalled(suite.T(), "Broadcast", mock.Anything, mock.Anything)
}

func (suite *AdminServerTestSuite) TestDeletes() {
	tests := []struct {
		description string
		path        string
		setup       func()
		collection  string
		location    string
	}{
		{
			"Test delete user", "/users/7/delete",
			func() {
				suite.apiMock.On("DeleteUser", mock.Anything, "tok", "7").Return(&parser.MutationResponse{Success: true}, nil).Once()
			},
			"users", "/users?notice=user_deleted&page=1",
		},
		{
			"Test delete game", "/games/5/delete",
			func() {
				suite.apiMock.On("DeleteGame", mock.Anything, "tok", "5").Return(&parser.MutationResponse{Success: true}, nil).Once()
			},
			"games", "/games?notice=game_deleted&page=1",
		},
		{
			"Test delete post sends the administrator id", "/posts/3/delete",
			func() {
				suite.apiMock.On("DeletePost", mock.Anything, "tok", "3", "1").Return(&parser.MutationResponse{Success: true}, nil).Once()
			},
			"posts", "/posts?notice=post_deleted&page=1",
		},
	}
	suite.login()
	for _, tc := range tests {
		suite.Run(tc.description, func() {
			tc.setup()
			suite.connStoreMock.On("Broadcast", suite.sessionId(), parser.NewReloadEvent(tc.collection)).Return(0).Once()
			resp, _ := suite.post(tc.path, url.Values{})
			suite.Equal(http.StatusSeeOther, resp.StatusCode)
			suite.Equal(tc.location, resp.Header.Get("Location"))
		})
	}
}

func (suite *AdminServerTestSuite) TestDeleteFailureShowsAlert() {
	suite.login()
	suite.apiMock.On("DeleteGame", mock.Anything, "tok", "5").
		Return(nil, &backend.Error{Op: "delete game", Kind: backend.ErrTransport}).Once()
	resp, body := suite.post("/games/5/delete", url.Values{})
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, "게임 삭제에 실패했습니다.")
	suite.Contains(body, `action="/games/5/delete"`)
}

func (suite *AdminServerTestSuite) TestConfirmPages() {
	suite.login()
	resp, body := suite.get("/posts/3/delete")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, "정말로 이 게시물을 삭제하시겠습니까?")
	suite.Contains(body, `action="/posts/3/delete"`)
}

func (suite *AdminServerTestSuite) TestPostModal() {
	suite.login()
	suite.apiMock.On("GetPost", mock.Anything, "tok", "3").Return(&parser.Post{Id: "3", Title: "weekend match"}, nil).Once()
	resp, body := suite.get("/posts/3")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, "weekend match")
	suite.Contains(body, `colspan="3"`)
	suite.Contains(body, "참가자가 없습니다.")
}

func (suite *AdminServerTestSuite) TestLogout() {
	suite.login()
	id := suite.sessionId()
	suite.connStoreMock.On("CloseSession", id).Return().Once()
	suite.dbMock.On("RemoveSession", id).Return(nil).Once()

	resp, _ := suite.post("/logout", url.Values{})
	suite.Equal(http.StatusSeeOther, resp.StatusCode)
	suite.Equal("/login", resp.Header.Get("Location"))
	suite.Equal(0, suite.gs.Sessions.Len())

	suite.dbMock.On("GetItem", mock.Anything, db.ADMIN_TOKEN_KEY).Return("", false)
	resp, _ = suite.get("/")
	suite.Equal(http.StatusSeeOther, resp.StatusCode)
}

func (suite *AdminServerTestSuite) TestRestoreFromStoredToken() {
	id := uuid.NewString()
	u, _ := url.Parse(suite.server.URL)
	suite.client.Jar.SetCookies(u, []*http.Cookie{{Name: SESSION_COOKIE_NAME, Value: id, Path: "/"}})
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	suite.Require().NoError(err)

	suite.dbMock.On("GetItem", id, db.ADMIN_TOKEN_KEY).Return(token, true).Once()
	suite.apiMock.On("UserInfo", mock.Anything, token, "1").Return(adminProfile(), nil).Once()
	suite.apiMock.On("ListUsers", mock.Anything, token, parser.ListQuery{Page: 1}).Return(&parser.UsersPage{}, nil).Once()

	resp, body := suite.get("/users")
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, "root")
	suite.Equal(id, suite.sessionId())
}

func (suite *AdminServerTestSuite) TestRestoreWithExpiredTokenClearsIt() {
	id := uuid.NewString()
	u, _ := url.Parse(suite.server.URL)
	suite.client.Jar.SetCookies(u, []*http.Cookie{{Name: SESSION_COOKIE_NAME, Value: id, Path: "/"}})
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	suite.Require().NoError(err)

	suite.dbMock.On("GetItem", id, db.ADMIN_TOKEN_KEY).Return(token, true).Once()
	suite.dbMock.On("RemoveItem", id, db.ADMIN_TOKEN_KEY).Return(nil).Once()

	resp, _ := suite.get("/")
	suite.Equal(http.StatusSeeOther, resp.StatusCode)
	suite.Equal("/login", resp.Header.Get("Location"))
}

func TestEventsReceiveReloadAfterMutation(t *testing.T) {
	apiMock := backendMocks.NewAPI(t)
	repo := dbMocks.NewRepository(t)
	store := NewConnectionStore()
	gs := CreateMockAdminServer(t, apiMock, repo, store)
	server := httptest.NewServer(gs.Router)
	defer server.Close()
	s := &AdminServerTestSuite{apiMock: apiMock, dbMock: repo, gs: gs, server: server, client: newBrowser(t)}
	s.SetT(t)
	s.login()

	u, _ := url.Parse(server.URL)
	header := http.Header{}
	for _, c := range s.client.Jar.Cookies(u) {
		header.Add("Cookie", c.Name+"="+c.Value)
	}
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("Failed to open event stream: %v", err)
	}
	defer conn.Close()
	s.Eventually(func() bool { return store.Len(s.sessionId()) == 1 }, 2*time.Second, 10*time.Millisecond)

	apiMock.On("DeleteGame", mock.Anything, "tok", "5").Return(&parser.MutationResponse{Success: true}, nil).Once()
	resp, _ := s.post("/games/5/delete", url.Values{})
	s.Equal(http.StatusSeeOther, resp.StatusCode)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	event := parser.ReloadEvent{}
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("Failed to read reload event: %v", err)
	}
	s.Equal(parser.NewReloadEvent("games"), event)
}

func TestEventsRequireSession(t *testing.T) {
	repo := dbMocks.NewRepository(t)
	repo.On("GetItem", mock.Anything, db.ADMIN_TOKEN_KEY).Return("", false)
	gs := CreateMockAdminServer(t, backendMocks.NewAPI(t), repo, NewConnectionStore())
	server := httptest.NewServer(gs.Router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/events"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if !errors.Is(err, websocket.ErrBadHandshake) {
		t.Fatalf("expected a rejected handshake, got %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.StatusCode)
	}
}
