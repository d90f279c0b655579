package view

import (
	"errors"
	"net/url"

	"pongadmin/internal/pagination"
	"pongadmin/internal/parser"
	"pongadmin/internal/session"
)

const (
	USERS_COLUMNS = 9
	GAMES_COLUMNS = 6
	POSTS_COLUMNS = 8
)

// CollectionView is a paginated table page with its filter form.
type CollectionView struct {
	Page       PageContext
	Collection session.Page
	Table      Table
	// Pagination is nil when the load failed.
	Pagination *PaginationView

	Search            string
	SearchPlaceholder string
	StartDate         string
	EndDate           string
}

func UsersTable(pc PageContext, users []parser.User, err error) Table {
	loc := pc.Loc
	table := newTable(loc,
		"users.col.id", "users.col.name", "users.col.student_id", "users.col.phone",
		"users.col.score", "users.col.record", "users.col.created_at", "users.col.role",
		"users.col.actions",
	)
	if err != nil {
		return table.fail(loc)
	}
	if len(users) == 0 {
		return table.empty(loc, "table.no_data")
	}
	for _, u := range users {
		name := u.DisplayName()
		if name == "" {
			name = T(loc, "users.name_missing")
		}
		role := Cell{Text: T(loc, "users.role.member"), Badge: "secondary"}
		if u.IsAdmin.Truthy() {
			role = Cell{Text: T(loc, "users.role.admin"), Badge: "success"}
		}
		cells := text(
			orMissing(u.Key()),
			name,
			orMissing(u.StudentId.String()),
			orMissing(u.PhoneValue()),
			u.Score.String(),
			record(u.WinCount, u.LoseCount),
			FormatDateTime(pc.Lang, u.CreatedAt),
		)
		row := Row{Cells: append(cells, role)}
		if id := u.Key(); id != "" {
			row.Actions = []Action{{Label: T(loc, "action.edit"), Href: "/users/" + url.PathEscape(id)}}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func GamesTable(pc PageContext, games []parser.Game, err error) Table {
	loc := pc.Loc
	table := newTable(loc,
		"games.col.id", "games.col.winner", "games.col.loser", "games.col.score",
		"games.col.played_at", "games.col.actions",
	)
	if err != nil {
		return table.fail(loc)
	}
	if len(games) == 0 {
		return table.empty(loc, "table.no_data")
	}
	for _, g := range games {
		row := Row{Cells: text(
			orMissing(g.Key()),
			userLabel(loc, g.WinnerName, g.WinnerId),
			userLabel(loc, g.LoserName, g.LoserId),
			score(g.PlusScore, g.MinusScore),
			FormatDateTime(pc.Lang, g.CreatedAt),
		)}
		if id := g.Key(); id != "" {
			row.Actions = []Action{{
				Label:  T(loc, "action.delete"),
				Href:   "/games/" + url.PathEscape(id) + "/delete",
				Danger: true,
			}}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func PostsTable(pc PageContext, posts []parser.Post, err error) Table {
	loc := pc.Loc
	table := newTable(loc,
		"posts.col.id", "posts.col.title", "posts.col.writer", "posts.col.game_at",
		"posts.col.place", "posts.col.headcount", "posts.col.created_at", "posts.col.actions",
	)
	if err != nil {
		return table.fail(loc)
	}
	if len(posts) == 0 {
		return table.empty(loc, "table.no_data")
	}
	for _, p := range posts {
		row := Row{Cells: text(
			orMissing(p.Key()),
			orMissing(p.Title),
			orMissing(p.WriterName),
			FormatDateTime(pc.Lang, p.GameAt),
			orMissing(p.GamePlace),
			p.CurrentUser.String()+"/"+p.MaxUser.String(),
			FormatDateTime(pc.Lang, p.CreatedAt),
		)}
		if id := p.Key(); id != "" {
			row.Actions = []Action{{Label: T(loc, "action.view"), Href: "/posts/" + url.PathEscape(id)}}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// Users renders the users page for query. page is ignored when err is set.
func Users(pc PageContext, query parser.ListQuery, page *parser.UsersPage, err error) CollectionView {
	v := CollectionView{
		Page:              pc,
		Collection:        session.PageUsers,
		Search:            query.Search,
		SearchPlaceholder: T(pc.Loc, "users.search_placeholder"),
	}
	if err != nil || page == nil {
		v.Table = UsersTable(pc, nil, failure(err))
		return v
	}
	v.Table = UsersTable(pc, page.Users, nil)
	v.Pagination = paginate(pc, query.Page, page.TotalPages.Int(), session.PageUsers, url.Values{"search": {query.Search}})
	return v
}

func Games(pc PageContext, query parser.GamesQuery, page *parser.GamesPage, err error) CollectionView {
	v := CollectionView{
		Page:       pc,
		Collection: session.PageGames,
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
	}
	if err != nil || page == nil {
		v.Table = GamesTable(pc, nil, failure(err))
		return v
	}
	v.Table = GamesTable(pc, page.Games, nil)
	v.Pagination = paginate(pc, query.Page, page.TotalPages.Int(), session.PageGames, url.Values{
		"start_date": {query.StartDate},
		"end_date":   {query.EndDate},
	})
	return v
}

func Posts(pc PageContext, query parser.ListQuery, page *parser.PostsPage, err error) CollectionView {
	v := CollectionView{
		Page:              pc,
		Collection:        session.PagePosts,
		Search:            query.Search,
		SearchPlaceholder: T(pc.Loc, "posts.search_placeholder"),
	}
	if err != nil || page == nil {
		v.Table = PostsTable(pc, nil, failure(err))
		return v
	}
	v.Table = PostsTable(pc, page.Posts, nil)
	v.Pagination = paginate(pc, query.Page, page.TotalPages.Int(), session.PagePosts, url.Values{"search": {query.Search}})
	return v
}

func paginate(pc PageContext, current, total int, page session.Page, params url.Values) *PaginationView {
	p := Pagination(pc.Loc, pagination.Compute(current, total), page.Path(), params)
	return &p
}

var errNoPage = errors.New("no page returned")

func failure(err error) error {
	if err != nil {
		return err
	}
	return errNoPage
}
