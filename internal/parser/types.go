package parser

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Text decodes a JSON string or number into its textual form. null decodes to "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*t = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(data)
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Number decodes a JSON number or numeric string. null and "" decode to 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// String formats the number without a trailing fraction when it is integral.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (n Number) Int() int {
	return int(n)
}

// AdminFlag keeps the raw is_admin value sent by the backend.
// Only true, "true", "t" and 1 are treated as granting admin rights.
type AdminFlag struct {
	raw string
}

func NewAdminFlag(admin bool) AdminFlag {
	return AdminFlag{raw: strconv.FormatBool(admin)}
}

func (f *AdminFlag) UnmarshalJSON(data []byte) error {
	f.raw = string(bytes.TrimSpace(data))
	return nil
}

func (f AdminFlag) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatBool(f.Truthy())), nil
}

func (f AdminFlag) Truthy() bool {
	switch f.raw {
	case "true", `"true"`, `"t"`:
		return true
	}
	if f.raw == "" || f.raw[0] == '"' {
		return false
	}
	n, err := strconv.ParseFloat(f.raw, 64)
	return err == nil && n == 1
}

// String returns the value as the backend sent it, "undefined" when absent.
func (f AdminFlag) String() string {
	if f.raw == "" {
		return "undefined"
	}
	var s string
	if f.raw[0] == '"' && json.Unmarshal([]byte(f.raw), &s) == nil {
		return s
	}
	return f.raw
}
