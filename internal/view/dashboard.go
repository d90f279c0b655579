package view

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"pongadmin/internal/parser"
)

const (
	DASHBOARD_COLUMNS = 4
	DASHBOARD_TOP     = 5
	RECENT_WINDOW     = 7 * 24 * time.Hour
)

// DashboardData is the outcome of the dashboard's three independent loads.
type DashboardData struct {
	Users    []parser.User
	UsersErr error
	Games    []parser.Game
	GamesErr error
	Posts    []parser.Post
	PostsErr error
}

type Stat struct {
	Label string
	Value string
}

type DashboardView struct {
	Page        PageContext
	Stats       []Stat
	TopUsers    Table
	LatestGames Table
}

// Dashboard summarises data as of now. A failed load shows zero counts and one
// error row in its panel.
func Dashboard(pc PageContext, data DashboardData, now time.Time) DashboardView {
	loc := pc.Loc
	since := now.Add(-RECENT_WINDOW)

	totalUsers, newUsers := "0", "0"
	if data.UsersErr == nil {
		totalUsers = strconv.Itoa(len(data.Users))
		newUsers = strconv.Itoa(countSince(since, len(data.Users), func(i int) string {
			return data.Users[i].CreatedAt
		}))
	}
	totalGames, recentGames, avg := "0", "0", "0"
	if data.GamesErr == nil {
		totalGames = strconv.Itoa(len(data.Games))
		recentGames = strconv.Itoa(countSince(since, len(data.Games), func(i int) string {
			return data.Games[i].CreatedAt
		}))
		avg = averagePlusScore(data.Games)
	}
	totalPosts := "0"
	if data.PostsErr == nil {
		totalPosts = strconv.Itoa(len(data.Posts))
	}

	return DashboardView{
		Page: pc,
		Stats: []Stat{
			{Label: T(loc, "dashboard.total_users"), Value: totalUsers},
			{Label: T(loc, "dashboard.new_users"), Value: newUsers},
			{Label: T(loc, "dashboard.total_games"), Value: totalGames},
			{Label: T(loc, "dashboard.recent_games"), Value: recentGames},
			{Label: T(loc, "dashboard.avg_score"), Value: avg},
			{Label: T(loc, "dashboard.total_posts"), Value: totalPosts},
		},
		TopUsers:    topUsers(pc, data.Users, data.UsersErr),
		LatestGames: latestGames(pc, data.Games, data.GamesErr),
	}
}

func countSince(since time.Time, n int, createdAt func(int) string) int {
	count := 0
	for i := 0; i < n; i++ {
		if t, ok := ParseTime(createdAt(i)); ok && t.After(since) {
			count++
		}
	}
	return count
}

// averagePlusScore is "-" when there are no games.
func averagePlusScore(games []parser.Game) string {
	if len(games) == 0 {
		return MISSING
	}
	var total float64
	for _, g := range games {
		total += float64(g.PlusScore)
	}
	return fmt.Sprintf("%.1f", total/float64(len(games)))
}

func topUsers(pc PageContext, users []parser.User, err error) Table {
	loc := pc.Loc
	table := newTable(loc, "dashboard.col.rank", "users.col.name", "users.col.score", "users.col.record")
	if err != nil {
		return table.fail(loc)
	}
	if len(users) == 0 {
		return table.empty(loc, "table.no_data")
	}
	sorted := make([]parser.User, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	for i, u := range sorted[:min(DASHBOARD_TOP, len(sorted))] {
		name := u.DisplayName()
		if name == "" {
			name = T(loc, "user.placeholder", u.Key())
		}
		table.Rows = append(table.Rows, Row{Cells: text(
			strconv.Itoa(i+1),
			name,
			u.Score.String(),
			record(u.WinCount, u.LoseCount),
		)})
	}
	return table
}

func latestGames(pc PageContext, games []parser.Game, err error) Table {
	loc := pc.Loc
	table := newTable(loc, "games.col.winner", "games.col.loser", "games.col.score", "games.col.played_at")
	if err != nil {
		return table.fail(loc)
	}
	if len(games) == 0 {
		return table.empty(loc, "table.no_data")
	}
	sorted := make([]parser.Game, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := ParseTime(sorted[i].CreatedAt)
		tj, _ := ParseTime(sorted[j].CreatedAt)
		return ti.After(tj)
	})
	for _, g := range sorted[:min(DASHBOARD_TOP, len(sorted))] {
		table.Rows = append(table.Rows, Row{Cells: text(
			userLabel(loc, g.WinnerName, g.WinnerId),
			userLabel(loc, g.LoserName, g.LoserId),
			score(g.PlusScore, g.MinusScore),
			FormatDateTime(pc.Lang, g.CreatedAt),
		)})
	}
	return table
}
