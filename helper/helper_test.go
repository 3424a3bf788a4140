package helper

import (
	"net/url"
	"testing"
)

func TestFirstLine(t *testing.T) {
	tests := map[string]string{
		"":                  "",
		"single":            "single",
		"one\ntwo":          "one",
		"one\r\ntwo\nthree": "one",
		"\nleading":         "",
	}
	for in, want := range tests {
		if got := FirstLine(in); got != want {
			t.Errorf("FirstLine(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJoinURL(t *testing.T) {
	tests := []struct {
		base  string
		query url.Values
		want  string
	}{
		{"https://mon.example", url.Values{"host": {"web01"}}, "https://mon.example/monitoring/host/show?host=web01"},
		{"https://mon.example/", url.Values{"host": {"web01"}}, "https://mon.example/monitoring/host/show?host=web01"},
		{"", url.Values{"host": {"a b"}}, "/monitoring/host/show?host=a+b"},
		{"https://mon.example", nil, "https://mon.example/monitoring/host/show"},
	}
	for _, tt := range tests {
		if got := JoinURL(tt.base, "/monitoring/host/show", tt.query); got != tt.want {
			t.Errorf("JoinURL(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	if got := MarkdownLink("web01", "https://x/y"); got != "[web01](https://x/y)" {
		t.Errorf("MarkdownLink = %q", got)
	}
	if got := Bold("[a](b)"); got != "__[a](b)__" {
		t.Errorf("Bold = %q", got)
	}
}
