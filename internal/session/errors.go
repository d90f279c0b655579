package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAdmin is matched by every *AuthorizationError.
	ErrNotAdmin = errors.New("not an administrator")
	// ErrNoToken means no token was stored for the browser.
	ErrNoToken = errors.New("no stored admin token")
	// ErrTokenExpired means the stored token's exp claim has passed.
	ErrTokenExpired = errors.New("admin token expired")
	// ErrUnidentified means the token names no user and no who-am-i endpoint
	// could be asked instead.
	ErrUnidentified = errors.New("token does not identify a user")
	// ErrSuperseded marks a load canceled by a newer load of the same browser.
	ErrSuperseded = errors.New("load superseded by a newer request")
)

// AuthorizationError rejects a profile whose is_admin value is not truthy.
// Value is the is_admin value exactly as received.
type AuthorizationError struct {
	Value string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s: is_admin=%s", ErrNotAdmin, e.Value)
}

func (e *AuthorizationError) Unwrap() error {
	return ErrNotAdmin
}
