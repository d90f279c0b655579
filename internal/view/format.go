package view

import (
	"strings"
	"time"

	"pongadmin/internal/parser"
)

const MISSING = "-"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime reads the timestamps the backend emits. Timestamps without a zone
// are read as UTC.
func ParseTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateTime formats raw for lang in the timestamp's own zone. Empty input
// yields MISSING and unparseable input is shown as received.
func FormatDateTime(lang, raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MISSING
	}
	t, ok := ParseTime(raw)
	if !ok {
		return raw
	}
	if strings.HasPrefix(lang, "en") {
		return t.Format("01/02/2006, 15:04")
	}
	return t.Format("2006. 01. 02. 15:04")
}

// orMissing returns value or MISSING when it is blank.
func orMissing(value string) string {
	if strings.TrimSpace(value) == "" {
		return MISSING
	}
	return value
}

// userLabel names a participant of a game, falling back to its id.
func userLabel(loc Localizer, name string, id parser.Text) string {
	if name != "" {
		return name
	}
	ref := id.String()
	if ref == "" {
		ref = "?"
	}
	return T(loc, "user.placeholder", ref)
}

func score(plus, minus parser.Number) string {
	return plus.String() + ":" + minus.String()
}

func record(wins, losses parser.Number) string {
	return wins.String() + "/" + losses.String()
}
