package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Text is a display string decoded leniently from any JSON scalar.
// Strings decode as-is, numbers and booleans as their literal text, and
// null, objects and arrays as the empty string.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		*t = ""
		return nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[', 'n':
		*t = ""
	default:
		*t = Text(raw)
	}
	return nil
}

// String returns the display value
func (t Text) String() string {
	return string(t)
}

// StringList is an ordered list of display strings. Any JSON value other
// than an array decodes as an empty list.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || raw[0] != '[' {
		*l = nil
		return nil
	}

	var items []Text
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}

	out := make(StringList, len(items))
	for i, item := range items {
		out[i] = string(item)
	}
	*l = out
	return nil
}

// MarshalJSON encodes an empty list as [] rather than null
func (l StringList) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Level is a numeric percentage. It is not range-checked.
type Level struct {
	Value float64
	Set   bool
}

// UnmarshalJSON accepts a number or a numeric string; anything else leaves
// the level unset.
func (lv *Level) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	*lv = Level{}
	if len(raw) == 0 {
		return nil
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	*lv = Level{Value: v, Set: true}
	return nil
}

// MarshalJSON encodes an unset level as null
func (lv Level) MarshalJSON() ([]byte, error) {
	if !lv.Set {
		return []byte("null"), nil
	}
	return json.Marshal(lv.Value)
}

// String formats the level without trailing zeros, or "" when unset
func (lv Level) String() string {
	if !lv.Set {
		return ""
	}
	return strconv.FormatFloat(lv.Value, 'f', -1, 64)
}

// ErrMalformed is returned when a payload is not valid JSON
var ErrMalformed = errors.New("malformed JSON payload")

// ErrAbsent is returned for a document that holds no data at all: null,
// false, 0 or "". Such a slot is treated as missing, not as empty.
var ErrAbsent = errors.New("JSON payload holds no data")

// isAbsent reports whether a valid JSON document is a falsy scalar
func isAbsent(raw []byte) bool {
	switch string(raw) {
	case "null", "false", `""`:
		return true
	}
	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		v, err := strconv.ParseFloat(string(raw), 64)
		return err == nil && v == 0
	}
	return false
}

// DecodeList decodes a JSON array of T. A valid JSON document that is not
// an array is treated as an empty list, except for the falsy scalars which
// yield ErrAbsent.
func DecodeList[T any](data []byte) ([]T, error) {
	raw := bytes.TrimSpace(data)
	if !json.Valid(raw) {
		return nil, ErrMalformed
	}
	if isAbsent(raw) {
		return nil, ErrAbsent
	}
	if raw[0] != '[' {
		return []T{}, nil
	}

	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
