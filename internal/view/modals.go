package view

import (
	"net/url"

	"pongadmin/internal/parser"
)

const PARTICIPANTS_COLUMNS = 3

// UserModal is the edit form of one user.
type UserModal struct {
	Page          PageContext
	Id            string
	Username      string
	StudentId     string
	Phone         string
	StatusMessage string
	IsAdmin       bool
	SaveHref      string
	DeleteHref    string
	CancelHref    string
}

func NewUserModal(pc PageContext, user parser.User) UserModal {
	id := user.Key()
	base := "/users/" + url.PathEscape(id)
	return UserModal{
		Page:          pc,
		Id:            id,
		Username:      user.Username,
		StudentId:     user.StudentId.String(),
		Phone:         user.PhoneValue(),
		StatusMessage: user.StatusMessage,
		IsAdmin:       user.IsAdmin.Truthy(),
		SaveHref:      base,
		DeleteHref:    base + "/delete",
		CancelHref:    "/users",
	}
}

// PostModal shows one post and its ordered participants.
type PostModal struct {
	Page         PageContext
	Id           string
	Title        string
	WriterName   string
	GameAt       string
	GamePlace    string
	Headcount    string
	CreatedAt    string
	Content      string
	Participants Table
	DeleteHref   string
	CancelHref   string
}

func NewPostModal(pc PageContext, post parser.Post) PostModal {
	id := post.Key()
	loc := pc.Loc
	participants := newTable(loc, "participants.col.id", "participants.col.name", "participants.col.student_id")
	if len(post.Participants) == 0 {
		participants = participants.empty(loc, "table.no_participants")
	}
	for _, u := range post.Participants {
		name := u.DisplayName()
		if name == "" {
			name = T(loc, "users.name_missing")
		}
		participants.Rows = append(participants.Rows, Row{Cells: text(
			orMissing(u.Key()),
			name,
			orMissing(u.StudentId.String()),
		)})
	}
	return PostModal{
		Page:         pc,
		Id:           id,
		Title:        orMissing(post.Title),
		WriterName:   orMissing(post.WriterName),
		GameAt:       FormatDateTime(pc.Lang, post.GameAt),
		GamePlace:    orMissing(post.GamePlace),
		Headcount:    post.CurrentUser.String() + "/" + post.MaxUser.String(),
		CreatedAt:    FormatDateTime(pc.Lang, post.CreatedAt),
		Content:      post.Content,
		Participants: participants,
		DeleteHref:   "/posts/" + url.PathEscape(id) + "/delete",
		CancelHref:   "/posts",
	}
}

// ConfirmView asks the administrator to confirm a destructive action.
type ConfirmView struct {
	Page         PageContext
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	Action       string
	CancelHref   string
}

// ConfirmKind selects the confirmation texts.
type ConfirmKind string

const (
	CONFIRM_DELETE_USER ConfirmKind = "delete_user"
	CONFIRM_DELETE_GAME ConfirmKind = "delete_game"
	CONFIRM_DELETE_POST ConfirmKind = "delete_post"
)

// Confirm builds a confirmation posting to action; cancelling returns to cancelHref.
func Confirm(pc PageContext, kind ConfirmKind, action, cancelHref string) ConfirmView {
	prefix := "confirm." + string(kind)
	return ConfirmView{
		Page:         pc,
		Title:        T(pc.Loc, prefix+".title"),
		Message:      T(pc.Loc, prefix+".message"),
		ConfirmLabel: T(pc.Loc, "action.confirm"),
		CancelLabel:  T(pc.Loc, "action.cancel"),
		Action:       action,
		CancelHref:   cancelHref,
	}
}
