package parser

import "encoding/json"

type LoginRequest struct {
	StudentId string `json:"student_id"`
	Password  string `json:"password"`
}

type LoginResponse struct {
	Success     bool            `json:"success"`
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	User        *User           `json:"user"`
	Detail      json.RawMessage `json:"detail"`
	Message     string          `json:"message"`
}

// ErrorMessage returns detail, falling back to message.
func (r LoginResponse) ErrorMessage() string {
	if detail := detailText(r.Detail); detail != "" {
		return detail
	}
	return r.Message
}

type User struct {
	Id            Text      `json:"id"`
	UserId        Text      `json:"user_id"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	StudentId     Text      `json:"student_id"`
	PhoneNumber   string    `json:"phone_number"`
	Phone         string    `json:"phone"`
	StatusMessage string    `json:"status_message"`
	Score         Number    `json:"score"`
	WinCount      Number    `json:"win_count"`
	LoseCount     Number    `json:"lose_count"`
	IsAdmin       AdminFlag `json:"is_admin"`
	CreatedAt     string    `json:"created_at"`
}

// Key returns the user's identifier, preferring id over user_id.
func (u User) Key() string {
	if u.Id != "" {
		return u.Id.String()
	}
	return u.UserId.String()
}

// DisplayName returns the username, falling back to name.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Name
}

func (u User) PhoneValue() string {
	if u.PhoneNumber != "" {
		return u.PhoneNumber
	}
	return u.Phone
}

type Game struct {
	Id         Text   `json:"id"`
	GameId     Text   `json:"game_id"`
	WinnerId   Text   `json:"winner_id"`
	WinnerName string `json:"winner_name"`
	LoserId    Text   `json:"loser_id"`
	LoserName  string `json:"loser_name"`
	PlusScore  Number `json:"plus_score"`
	MinusScore Number `json:"minus_score"`
	CreatedAt  string `json:"created_at"`
}

func (g Game) Key() string {
	if g.Id != "" {
		return g.Id.String()
	}
	return g.GameId.String()
}

type Post struct {
	Id           Text   `json:"id"`
	PostId       Text   `json:"post_id"`
	Title        string `json:"title"`
	WriterName   string `json:"writer_name"`
	GameAt       string `json:"game_at"`
	GamePlace    string `json:"game_place"`
	CurrentUser  Number `json:"current_user"`
	MaxUser      Number `json:"max_user"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
	Participants []User `json:"participants"`
}

func (p Post) Key() string {
	if p.Id != "" {
		return p.Id.String()
	}
	return p.PostId.String()
}

type UsersPage struct {
	Users      []User `json:"users"`
	TotalPages Number `json:"total_pages"`
}

type GamesPage struct {
	Games      []Game `json:"games"`
	TotalPages Number `json:"total_pages"`
}

type PostsPage struct {
	Posts      []Post `json:"posts"`
	TotalPages Number `json:"total_pages"`
}

// UserUpdate is the partial user sent with PUT /api/admin/user/{id}.
type UserUpdate struct {
	Username      string `json:"username"`
	PhoneNumber   string `json:"phone_number"`
	StatusMessage string `json:"status_message"`
	IsAdmin       bool   `json:"is_admin"`
}

type DeletePostRequest struct {
	UserId string `json:"user_id"`
}

type MutationResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

// ErrorMessage returns message, falling back to detail.
func (r MutationResponse) ErrorMessage() string {
	if r.Message != "" {
		return r.Message
	}
	return detailText(r.Detail)
}

// ErrorBody is the shape of backend error responses.
type ErrorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

// ListQuery filters the users and posts collections.
type ListQuery struct {
	Page   int
	Search string
}

// GamesQuery filters the games collection by creation date.
type GamesQuery struct {
	Page      int
	StartDate string
	EndDate   string
}

// ReloadEvent is pushed over the dashboard websocket after a mutation so that
// other tabs showing the collection reload its first page.
type ReloadEvent struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	Page       int    `json:"page"`
}

func NewReloadEvent(collection string) ReloadEvent {
	return ReloadEvent{Type: "reload", Collection: collection, Page: 1}
}
