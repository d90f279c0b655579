package session

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the parts of the bearer token used to identify the administrator.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// ReadClaims decodes the token's claims without verifying its signature; the
// backend verifies the signature on every authenticated call.
func ReadClaims(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	p := jwt.NewParser(jwt.WithJSONNumber())
	if _, _, err := p.ParseUnverified(token, claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrUnidentified, err)
	}
	var result Claims
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrUnidentified, err)
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}
	switch sub := claims["sub"].(type) {
	case string:
		result.Subject = sub
	case json.Number:
		result.Subject = sub.String()
	case float64:
		result.Subject = strconv.FormatFloat(sub, 'f', -1, 64)
	}
	return result, nil
}

// Expired reports whether the claims carry an expiry at or before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}
