package helper

import (
	"net/url"
	"strings"
)

// MarkdownLink renders [text](target).
func MarkdownLink(text, target string) string {
	return "[" + text + "](" + target + ")"
}

// Bold wraps s in the double-underscore markdown emphasis.
func Bold(s string) string {
	return "__" + s + "__"
}

// FirstLine returns s up to the first line break.
func FirstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}

// JoinURL appends path and the query to base, ignoring a trailing slash on base.
func JoinURL(base, path string, query url.Values) string {
	u := strings.TrimRight(base, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
