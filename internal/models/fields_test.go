package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"empty", "", StringList{}},
		{"whitespace only", "   ", StringList{}},
		{"json array", `["Go","React","Postgres"]`, StringList{"Go", "React", "Postgres"}},
		{"json array with padding", ` ["Go", " React "] `, StringList{"Go", "React"}},
		{"comma separated", "Go, React, Postgres", StringList{"Go", "React", "Postgres"}},
		{"comma with empties", "Go,,  ,React", StringList{"Go", "React"}},
		{"single value", "Go", StringList{"Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStringList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseStringList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringListUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"array", `["Go","React"]`, StringList{"Go", "React"}},
		{"string holding array", `"[\"Go\",\"React\"]"`, StringList{"Go", "React"}},
		{"string comma separated", `"Go, React"`, StringList{"Go", "React"}},
		{"empty string", `""`, StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	var got StringList
	if err := json.Unmarshal([]byte(`42`), &got); err == nil {
		t.Error("expected error for non-string non-array input")
	}
}

func TestStringListUnmarshalParam(t *testing.T) {
	var l StringList
	if err := l.UnmarshalParam(`["Docker","Kubernetes"]`); err != nil {
		t.Fatalf("UnmarshalParam: %v", err)
	}
	if !reflect.DeepEqual(l, StringList{"Docker", "Kubernetes"}) {
		t.Errorf("got %v", l)
	}
}

func TestStringListJSON(t *testing.T) {
	if got := string(StringList(nil).JSON()); got != "[]" {
		t.Errorf("nil list JSON = %q, want []", got)
	}
	if got := string(StringList{"a", "b"}.JSON()); got != `["a","b"]` {
		t.Errorf("JSON = %q", got)
	}
}
