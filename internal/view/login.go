package view

import (
	"errors"

	"pongadmin/internal/backend"
	"pongadmin/internal/session"
)

type LoginView struct {
	Page      PageContext
	StudentId string
	Error     string
}

func Login(pc PageContext, studentId string, err error) LoginView {
	return LoginView{Page: pc, StudentId: studentId, Error: LoginError(pc.Loc, err)}
}

// LoginError is the inline message shown for a failed login, "" for nil.
func LoginError(loc Localizer, err error) string {
	if err == nil {
		return ""
	}
	var authErr *session.AuthorizationError
	switch {
	case errors.As(err, &authErr):
		return T(loc, "login.not_admin", authErr.Value)
	case errors.Is(err, backend.ErrRejected):
		if msg := backend.MessageOf(err); msg != "" {
			return msg
		}
		return T(loc, "login.failed")
	case errors.Is(err, backend.ErrTransport), errors.Is(err, backend.ErrDecode):
		return T(loc, "login.unavailable")
	}
	return T(loc, "login.failed")
}
