package models

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// StringList is an ordered list of strings that accepts three input shapes:
// a JSON array, a string containing a JSON array, or a comma-separated
// string. Elements are trimmed; empty elements from comma input are dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = trimAll(arr)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*l = ParseStringList(s)
	return nil
}

// UnmarshalParam lets gin bind form values (multipart or urlencoded).
func (l *StringList) UnmarshalParam(param string) error {
	*l = ParseStringList(param)
	return nil
}

// ParseStringList tries the value as a JSON array first, then falls back to
// comma splitting.
func ParseStringList(s string) StringList {
	s = strings.TrimSpace(s)
	if s == "" {
		return StringList{}
	}

	var arr []string
	if err := json.Unmarshal([]byte(s), &arr); err == nil {
		return trimAll(arr)
	}

	out := StringList{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JSON serializes the list for a JSON column. A nil list becomes [].
func (l StringList) JSON() datatypes.JSON {
	if l == nil {
		l = StringList{}
	}
	b, _ := json.Marshal([]string(l))
	return datatypes.JSON(b)
}

func trimAll(in []string) StringList {
	out := make(StringList, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

// emptyJSONArray normalizes NULL list columns on read.
func emptyJSONArray(v datatypes.JSON) datatypes.JSON {
	if len(v) == 0 || string(v) == "null" {
		return datatypes.JSON("[]")
	}
	return v
}
