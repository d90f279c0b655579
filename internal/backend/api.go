//go:generate mockery --name=API --output=./mocks
package backend

import (
	"context"

	"pongadmin/internal/parser"
)

// API is the subset of the league backend used by the dashboard.
// Every call except Login is authenticated with the given bearer token.
type API interface {
	Login(ctx context.Context, studentId, password string) (*parser.LoginResponse, error)
	UserInfo(ctx context.Context, token, userId string) (*parser.User, error)
	WhoAmI(ctx context.Context, token string) (*parser.User, error)
	ListUsers(ctx context.Context, token string, query parser.ListQuery) (*parser.UsersPage, error)
	ListGames(ctx context.Context, token string, query parser.GamesQuery) (*parser.GamesPage, error)
	ListPosts(ctx context.Context, token string, query parser.ListQuery) (*parser.PostsPage, error)
	GetPost(ctx context.Context, token, postId string) (*parser.Post, error)
	UpdateUser(ctx context.Context, token, userId string, update parser.UserUpdate) (*parser.MutationResponse, error)
	DeleteUser(ctx context.Context, token, userId string) (*parser.MutationResponse, error)
	DeleteGame(ctx context.Context, token, gameId string) (*parser.MutationResponse, error)
	DeletePost(ctx context.Context, token, postId, requesterId string) (*parser.MutationResponse, error)
}
