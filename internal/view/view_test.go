package view

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"pongadmin/internal/backend"
	"pongadmin/internal/i18n"
	"pongadmin/internal/pagination"
	"pongadmin/internal/parser"
	"pongadmin/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func koContext(page session.Page) PageContext {
	return NewPageContext(i18n.Printer(language.Korean), "ko", page, parser.User{Username: "root"})
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestNavHighlightsExactlyOnePage(t *testing.T) {
	for _, page := range session.Pages {
		pc := koContext(page)
		active := 0
		for _, item := range pc.Nav {
			if item.Active {
				active++
				assert.Equal(t, page.Path(), item.Href)
			}
		}
		assert.Equal(t, 1, active)
	}
	assert.Equal(t, "root", koContext(session.PageUsers).AdminName)
}

func TestAdminNameFallback(t *testing.T) {
	pc := NewPageContext(i18n.Printer(language.Korean), "ko", session.PageDashboard, parser.User{})
	assert.Equal(t, "관리자", pc.AdminName)
}

func TestEmptyCollectionsRenderOnePlaceholderRow(t *testing.T) {
	tests := []struct {
		description string
		table       Table
		colspan     int
	}{
		{"Test empty users", UsersTable(koContext(session.PageUsers), nil, nil), USERS_COLUMNS},
		{"Test empty games", GamesTable(koContext(session.PageGames), nil, nil), GAMES_COLUMNS},
		{"Test empty posts", PostsTable(koContext(session.PagePosts), nil, nil), POSTS_COLUMNS},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Empty(t, tc.table.Rows)
			assert.Equal(t, "데이터가 없습니다.", tc.table.Placeholder)
			assert.False(t, tc.table.Failed)
			assert.Equal(t, tc.colspan, tc.table.Colspan())
		})
	}
}

func TestFailedCollectionsRenderOneErrorRow(t *testing.T) {
	cause := &backend.Error{Op: "list users", Kind: backend.ErrTransport}
	users := Users(koContext(session.PageUsers), parser.ListQuery{Page: 2, Search: "kim"}, nil, cause)
	games := Games(koContext(session.PageGames), parser.GamesQuery{Page: 1}, nil, cause)
	posts := Posts(koContext(session.PagePosts), parser.ListQuery{Page: 1}, nil, cause)

	for _, v := range []CollectionView{users, games, posts} {
		assert.Empty(t, v.Table.Rows)
		assert.True(t, v.Table.Failed)
		assert.Equal(t, "데이터 로드 실패", v.Table.Placeholder)
		assert.Nil(t, v.Pagination)
	}
	assert.Equal(t, "kim", users.Search)
}

func TestUserRowFallbacks(t *testing.T) {
	users := decode[[]parser.User](t, `[
		{"id": 3},
		{"user_id": "9", "username": "kim", "student_id": 2024001, "phone_number": "010-1",
		 "score": "12", "win_count": 4, "lose_count": null, "is_admin": "t", "created_at": "2024-03-05T14:30:00"}
	]`)
	table := UsersTable(koContext(session.PageUsers), users, nil)
	require.Len(t, table.Rows, 2)

	bare := table.Rows[0]
	require.Len(t, bare.Cells, USERS_COLUMNS-1)
	assert.Equal(t, []string{"3", "이름 없음", "-", "-", "0", "0/0", "-", "일반"}, cellTexts(bare.Cells))
	assert.Equal(t, "secondary", bare.Cells[7].Badge)
	assert.Equal(t, "/users/3", bare.Actions[0].Href)

	full := table.Rows[1]
	assert.Equal(t, []string{"9", "kim", "2024001", "010-1", "12", "4/0", "2024. 03. 05. 14:30", "관리자"}, cellTexts(full.Cells))
	assert.Equal(t, "success", full.Cells[7].Badge)
}

func TestGameRowFallbacks(t *testing.T) {
	games := decode[[]parser.Game](t, `[
		{"winner_id": 5},
		{"game_id": 8, "winner_name": "lee", "loser_name": "park", "plus_score": 11, "minus_score": "7", "created_at": "2024-01-02 09:05:00"}
	]`)
	table := GamesTable(koContext(session.PageGames), games, nil)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"-", "사용자 5", "사용자 ?", "0:0", "-"}, cellTexts(table.Rows[0].Cells))
	assert.Empty(t, table.Rows[0].Actions)
	assert.Equal(t, []string{"8", "lee", "park", "11:7", "2024. 01. 02. 09:05"}, cellTexts(table.Rows[1].Cells))
	assert.Equal(t, "/games/8/delete", table.Rows[1].Actions[0].Href)
	assert.True(t, table.Rows[1].Actions[0].Danger)
}

func TestPostRowFallbacks(t *testing.T) {
	posts := decode[[]parser.Post](t, `[{"post_id": "p1"}]`)
	table := PostsTable(koContext(session.PagePosts), posts, nil)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"p1", "-", "-", "-", "-", "0/0", "-"}, cellTexts(table.Rows[0].Cells))
	assert.Equal(t, "/posts/p1", table.Rows[0].Actions[0].Href)
}

func TestPaginationKeepsFilters(t *testing.T) {
	pc := koContext(session.PageGames)
	v := Games(pc, parser.GamesQuery{Page: 1, StartDate: "2024-01-01", EndDate: ""}, &parser.GamesPage{TotalPages: 3}, nil)
	require.NotNil(t, v.Pagination)
	p := v.Pagination
	assert.True(t, p.Prev.Disabled)
	assert.False(t, p.Next.Disabled)
	require.Len(t, p.Links, 3)
	assert.True(t, p.Links[0].Active)

	link, err := url.Parse(p.Links[2].Href)
	require.NoError(t, err)
	assert.Equal(t, "/games", link.Path)
	assert.Equal(t, "3", link.Query().Get("page"))
	assert.Equal(t, "2024-01-01", link.Query().Get("start_date"))
	assert.False(t, link.Query().Has("end_date"))
}

func TestPaginationDefaultsMissingTotal(t *testing.T) {
	v := Users(koContext(session.PageUsers), parser.ListQuery{Page: 4}, &parser.UsersPage{}, nil)
	require.NotNil(t, v.Pagination)
	require.Len(t, v.Pagination.Links, 1)
	assert.True(t, v.Pagination.Links[0].Active)
	assert.True(t, v.Pagination.Prev.Disabled)
	assert.True(t, v.Pagination.Next.Disabled)
}

func TestPaginationWindowLinks(t *testing.T) {
	p := Pagination(nil, pagination.Compute(20, 20), "/posts", url.Values{"search": {"pong"}})
	labels := []string{}
	for _, l := range p.Links {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"16", "17", "18", "19", "20"}, labels)
	assert.True(t, p.Next.Disabled)
	assert.Equal(t, "/posts?page=19&search=pong", p.Prev.Href)
}

func TestDashboard(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	data := DashboardData{
		Users: decode[[]parser.User](t, `[
			{"id": 1, "username": "a", "score": 10, "created_at": "2024-03-09T00:00:00"},
			{"id": 2, "username": "b", "score": 30, "created_at": "2024-01-01T00:00:00"},
			{"id": 3, "score": 20},
			{"id": 4, "username": "d", "score": 5},
			{"id": 5, "username": "e", "score": 1},
			{"id": 6, "username": "f", "score": 0}
		]`),
		Games: decode[[]parser.Game](t, `[
			{"id": 1, "winner_name": "a", "loser_name": "b", "plus_score": 2, "created_at": "2024-03-01T00:00:00"},
			{"id": 2, "winner_name": "b", "loser_name": "a", "plus_score": 3, "created_at": "2024-03-08T00:00:00"}
		]`),
		PostsErr: errors.New("boom"),
	}
	v := Dashboard(koContext(session.PageDashboard), data, now)

	stats := map[string]string{}
	for _, s := range v.Stats {
		stats[s.Label] = s.Value
	}
	assert.Equal(t, "6", stats["총 사용자"])
	assert.Equal(t, "1", stats["신규 사용자 (7일)"])
	assert.Equal(t, "2", stats["총 게임"])
	assert.Equal(t, "1", stats["최근 게임 (7일)"])
	assert.Equal(t, "2.5", stats["평균 획득 점수"])
	assert.Equal(t, "0", stats["총 모집글"])

	require.Len(t, v.TopUsers.Rows, DASHBOARD_TOP)
	assert.Equal(t, DASHBOARD_COLUMNS, v.TopUsers.Colspan())
	assert.Equal(t, []string{"1", "b", "30", "0/0"}, cellTexts(v.TopUsers.Rows[0].Cells))
	assert.Equal(t, []string{"2", "사용자 3", "20", "0/0"}, cellTexts(v.TopUsers.Rows[1].Cells))

	require.Len(t, v.LatestGames.Rows, 2)
	assert.Equal(t, "b", v.LatestGames.Rows[0].Cells[0].Text)
}

func TestDashboardFailedPanels(t *testing.T) {
	v := Dashboard(koContext(session.PageDashboard), DashboardData{
		UsersErr: errors.New("down"),
		GamesErr: errors.New("down"),
	}, time.Now())
	assert.True(t, v.TopUsers.Failed)
	assert.True(t, v.LatestGames.Failed)
	assert.Empty(t, v.TopUsers.Rows)
	for _, s := range v.Stats {
		assert.Equal(t, "0", s.Value, s.Label)
	}
}

func TestDashboardWithoutGamesHasNoAverage(t *testing.T) {
	v := Dashboard(koContext(session.PageDashboard), DashboardData{}, time.Now())
	assert.Equal(t, MISSING, v.Stats[4].Value)
	assert.Equal(t, "데이터가 없습니다.", v.LatestGames.Placeholder)
}

func TestPostModal(t *testing.T) {
	pc := koContext(session.PagePosts)
	empty := NewPostModal(pc, parser.Post{Id: "4"})
	assert.Equal(t, "참가자가 없습니다.", empty.Participants.Placeholder)
	assert.Equal(t, PARTICIPANTS_COLUMNS, empty.Participants.Colspan())
	assert.Equal(t, "/posts/4/delete", empty.DeleteHref)

	post := decode[parser.Post](t, `{"id": 4, "title": "t", "participants": [
		{"user_id": 2, "username": "b", "student_id": "s2"},
		{"user_id": 1, "username": "a"}
	]}`)
	full := NewPostModal(pc, post)
	require.Len(t, full.Participants.Rows, 2)
	assert.Equal(t, []string{"2", "b", "s2"}, cellTexts(full.Participants.Rows[0].Cells))
	assert.Equal(t, []string{"1", "a", "-"}, cellTexts(full.Participants.Rows[1].Cells))
}

func TestUserModal(t *testing.T) {
	user := decode[parser.User](t, `{"id": 7, "username": "kim", "student_id": 2024001, "phone": "010", "status_message": "hi", "is_admin": 1}`)
	m := NewUserModal(koContext(session.PageUsers), user)
	assert.Equal(t, "7", m.Id)
	assert.Equal(t, "2024001", m.StudentId)
	assert.Equal(t, "010", m.Phone)
	assert.True(t, m.IsAdmin)
	assert.Equal(t, "/users/7", m.SaveHref)
	assert.Equal(t, "/users/7/delete", m.DeleteHref)
}

func TestConfirm(t *testing.T) {
	c := Confirm(koContext(session.PageGames), CONFIRM_DELETE_GAME, "/games/3/delete", "/games")
	assert.Equal(t, "게임 삭제", c.Title)
	assert.Equal(t, "정말로 이 게임을 삭제하시겠습니까?", c.Message)
	assert.Equal(t, "/games/3/delete", c.Action)
}

func TestLoginError(t *testing.T) {
	loc := i18n.Printer(language.Korean)
	tests := []struct {
		description string
		err         error
		expected    string
	}{
		{"Test no error", nil, ""},
		{"Test not admin", &session.AuthorizationError{Value: "false"}, "관리자 권한이 없습니다. (is_admin 값: false)"},
		{"Test backend message", &backend.Error{Kind: backend.ErrRejected, Message: "비밀번호가 틀렸습니다"}, "비밀번호가 틀렸습니다"},
		{"Test rejection without message", &backend.Error{Kind: backend.ErrRejected}, "로그인에 실패했습니다."},
		{"Test transport", &backend.Error{Kind: backend.ErrTransport}, "서버에 연결할 수 없습니다."},
		{"Test unknown", errors.New("x"), "로그인에 실패했습니다."},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, LoginError(loc, tc.err))
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "2024. 03. 05. 14:30", FormatDateTime("ko", "2024-03-05T14:30:00.123456"))
	assert.Equal(t, "03/05/2024, 14:30", FormatDateTime("en", "2024-03-05T14:30:00Z"))
	assert.Equal(t, MISSING, FormatDateTime("ko", ""))
	assert.Equal(t, "soon", FormatDateTime("ko", "soon"))
}

func TestFlash(t *testing.T) {
	pc := koContext(session.PageUsers).WithFlash(NOTICE_USER_DELETED, "<script>")
	assert.Equal(t, "사용자가 삭제되었습니다.", pc.Notice)
	assert.Empty(t, pc.Alert)
}

func cellTexts(cells []Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Text
	}
	return out
}
