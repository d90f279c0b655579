package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyBody = errors.New("empty response body")

func decode(data []byte, target any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}
	return json.Unmarshal(data, target)
}

func ParseLoginResponse(data []byte) (*LoginResponse, error) {
	loginResponse := &LoginResponse{}
	err := decode(data, loginResponse)
	return loginResponse, err
}

// ParseUserInfo accepts both {"user": {...}} and a bare user object.
func ParseUserInfo(data []byte) (*User, error) {
	envelope := struct {
		User *User `json:"user"`
	}{}
	if err := decode(data, &envelope); err != nil {
		return nil, err
	}
	if envelope.User != nil {
		return envelope.User, nil
	}
	user := &User{}
	err := json.Unmarshal(data, user)
	return user, err
}

// ParsePostDetail accepts both {"post": {...}, "participants": [...]} and a
// bare post object carrying its participants.
func ParsePostDetail(data []byte) (*Post, error) {
	envelope := struct {
		Post         *Post  `json:"post"`
		Participants []User `json:"participants"`
	}{}
	if err := decode(data, &envelope); err != nil {
		return nil, err
	}
	if envelope.Post != nil {
		if len(envelope.Post.Participants) == 0 {
			envelope.Post.Participants = envelope.Participants
		}
		return envelope.Post, nil
	}
	post := &Post{}
	err := json.Unmarshal(data, post)
	return post, err
}

func ParseUsersPage(data []byte) (*UsersPage, error) {
	page := &UsersPage{}
	err := decode(data, page)
	return page, err
}

func ParseGamesPage(data []byte) (*GamesPage, error) {
	page := &GamesPage{}
	err := decode(data, page)
	return page, err
}

func ParsePostsPage(data []byte) (*PostsPage, error) {
	page := &PostsPage{}
	err := decode(data, page)
	return page, err
}

func ParseMutationResponse(data []byte) (*MutationResponse, error) {
	resp := &MutationResponse{}
	err := decode(data, resp)
	return resp, err
}

// ParseErrorMessage extracts a human readable message from an error body.
// Validation errors carry a list in detail; those yield "".
func ParseErrorMessage(data []byte) string {
	body := &ErrorBody{}
	if err := decode(data, body); err != nil {
		return ""
	}
	if detail := detailText(body.Detail); detail != "" {
		return detail
	}
	return strings.TrimSpace(body.Message)
}

func detailText(raw json.RawMessage) string {
	var detail string
	if len(raw) == 0 || json.Unmarshal(raw, &detail) != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}
