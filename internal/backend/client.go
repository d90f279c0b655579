package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pongadmin/internal/logger"
	"pongadmin/internal/parser"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	LOGIN_PATH       = "/api/login"
	USER_INFO_PATH   = "/api/userinfo/"
	USERS_PATH       = "/api/usersinfo"
	GAMES_PATH       = "/api/games"
	POSTS_PATH       = "/api/recruit/posts"
	POST_PATH        = "/api/recruit/post/"
	ADMIN_USER_PATH  = "/api/admin/user/"
	ADMIN_GAME_PATH  = "/api/admin/game/"
	DEFAULT_TIMEOUT  = 10 * time.Second
	MAX_RESPONSE_LEN = 8 << 20
)

// ErrNoWhoami is returned by WhoAmI when no identity endpoint is configured.
var ErrNoWhoami = errors.New("who-am-i endpoint not configured")

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	WhoamiPath string
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	whoamiPath string
	httpClient *http.Client
	logger     logger.Logger
	tracer     trace.Tracer
}

var _ API = (*Client)(nil)

func NewClient(opts Options, log logger.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DEFAULT_TIMEOUT
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		whoamiPath: opts.WhoamiPath,
		httpClient: httpClient,
		logger:     log,
		tracer:     otel.Tracer("pongadmin/internal/backend"),
	}
}

func (c *Client) Login(ctx context.Context, studentId, password string) (*parser.LoginResponse, error) {
	const op = "login"
	data, err := c.do(ctx, op, http.MethodPost, LOGIN_PATH, nil, "", parser.LoginRequest{
		StudentId: studentId,
		Password:  password,
	})
	if err != nil {
		return nil, err
	}
	loginResponse, err := parser.ParseLoginResponse(data)
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrDecode, Err: err}
	}
	if loginResponse.AccessToken == "" {
		return nil, &Error{Op: op, Kind: ErrRejected, Message: loginResponse.ErrorMessage()}
	}
	return loginResponse, nil
}

func (c *Client) UserInfo(ctx context.Context, token, userId string) (*parser.User, error) {
	const op = "user info"
	data, err := c.do(ctx, op, http.MethodGet, USER_INFO_PATH+url.PathEscape(userId), nil, token, nil)
	if err != nil {
		return nil, err
	}
	user, err := parser.ParseUserInfo(data)
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrDecode, Err: err}
	}
	return user, nil
}

func (c *Client) WhoAmI(ctx context.Context, token string) (*parser.User, error) {
	const op = "whoami"
	if c.whoamiPath == "" {
		return nil, ErrNoWhoami
	}
	data, err := c.do(ctx, op, http.MethodGet, c.whoamiPath, nil, token, nil)
	if err != nil {
		return nil, err
	}
	user, err := parser.ParseUserInfo(data)
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrDecode, Err: err}
	}
	return user, nil
}

func (c *Client) ListUsers(ctx context.Context, token string, query parser.ListQuery) (*parser.UsersPage, error) {
	const op = "list users"
	data, err := c.do(ctx, op, http.MethodGet, USERS_PATH, listValues(query), token, nil)
	if err != nil {
		return nil, err
	}
	page, err := parser.ParseUsersPage(data)
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrDecode, Err: err}
	}
	return page, nil
}

func (c *Client) ListGames(ctx context.Context, token string, query parser.GamesQuery) (*parser.GamesPage, error) {
	const op = "list games"
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.StartDate != "" {
		values.Set("start_date", query.StartDate)
	}
	if query.EndDate != "" {
		values.Set("end_date", query.EndDate)
	}
	data, err := c.do(ctx, op, http.MethodGet, GAMES_PATH, values, token, nil)
	if err != nil {
		return nil, err
	}
	page, err := parser.ParseGamesPage(data)
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrDecode, Err: err}
	}
	return page, nil
}

func (c *Client) ListPosts(ctx context.Context, token string, query parser.ListQuery) (*parser.PostsPage, error) {
	const op = "list posts"
	data, err := c.do(ctx, op, http.MethodGet, POSTS_PATH, listValues(query), token, nil)
	if err != nil {
		return nil, err
	}
	page, err := parser.ParsePostsPage(data)
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrDecode, Err: err}
	}
	return page, nil
}

func (c *Client) GetPost(ctx context.Context, token, postId string) (*parser.Post, error) {
	const op = "get post"
	data, err := c.do(ctx, op, http.MethodGet, POST_PATH+url.PathEscape(postId), nil, token, nil)
	if err != nil {
		return nil, err
	}
	post, err := parser.ParsePostDetail(data)
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrDecode, Err: err}
	}
	return post, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, userId string, update parser.UserUpdate) (*parser.MutationResponse, error) {
	return c.mutate(ctx, "update user", http.MethodPut, ADMIN_USER_PATH+url.PathEscape(userId), token, update)
}

func (c *Client) DeleteUser(ctx context.Context, token, userId string) (*parser.MutationResponse, error) {
	return c.mutate(ctx, "delete user", http.MethodDelete, ADMIN_USER_PATH+url.PathEscape(userId), token, nil)
}

func (c *Client) DeleteGame(ctx context.Context, token, gameId string) (*parser.MutationResponse, error) {
	return c.mutate(ctx, "delete game", http.MethodDelete, ADMIN_GAME_PATH+url.PathEscape(gameId), token, nil)
}

func (c *Client) DeletePost(ctx context.Context, token, postId, requesterId string) (*parser.MutationResponse, error) {
	return c.mutate(ctx, "delete post", http.MethodDelete, POST_PATH+url.PathEscape(postId), token, parser.DeletePostRequest{
		UserId: requesterId,
	})
}

// mutate treats anything but a declared {success:true} as a rejection.
func (c *Client) mutate(ctx context.Context, op, method, path, token string, body any) (*parser.MutationResponse, error) {
	data, err := c.do(ctx, op, method, path, nil, token, body)
	if err != nil {
		return nil, err
	}
	resp, err := parser.ParseMutationResponse(data)
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrDecode, Err: err}
	}
	if !resp.Success {
		return resp, &Error{Op: op, Kind: ErrRejected, Message: resp.ErrorMessage()}
	}
	return resp, nil
}

// do sends one request and returns the raw body. Non-2xx responses return the
// body together with an ErrRejected error.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, token string, body any) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "backend "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, c.fail(span, fmt.Errorf("%s: encode request: %w", op, err))
		}
		reader = bytes.NewReader(encoded)
	}
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, c.fail(span, &Error{Op: op, Kind: ErrTransport, Err: err})
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	c.logger.Debug(fmt.Sprintf("Sending %s request to endpoint %s", method, path))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(span, &Error{Op: op, Kind: ErrTransport, Err: err})
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, MAX_RESPONSE_LEN))
	if err != nil {
		return nil, c.fail(span, &Error{Op: op, Status: resp.StatusCode, Kind: ErrTransport, Err: err})
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.Debug(fmt.Sprintf("%s request to endpoint %s returned status %d", method, path, resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return data, c.fail(span, &Error{
			Op:      op,
			Status:  resp.StatusCode,
			Message: parser.ParseErrorMessage(data),
			Kind:    ErrRejected,
		})
	}
	return data, nil
}

func (c *Client) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if errors.Is(err, context.Canceled) {
		c.logger.Debug(err.Error())
		return err
	}
	c.logger.Error("Backend request failed", err)
	return err
}

func listValues(query parser.ListQuery) url.Values {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	return values
}
