// Package markdown renders the portfolio's Markdown text (the about section
// and project descriptions) to HTML with goldmark.
package markdown

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in the source is omitted and dangerous link schemes are dropped
// by goldmark's default (safe) renderer.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Linkify),
)

// RenderMarkdown writes the HTML representation of content to buf.
func RenderMarkdown(buf *bytes.Buffer, content string) error {
	return md.Convert([]byte(content), buf)
}

// ToHTML returns the HTML representation of content.
func ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, content); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SafeURL returns raw if it is a site-relative path, a fragment, or an
// http(s), mailto or tel URL, and "" otherwise. The result is not
// HTML-escaped; callers writing attributes must escape it.
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "#") || (strings.HasPrefix(val, "/") && !strings.HasPrefix(val, "//")) {
		return val
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return val
	default:
		return ""
	}
}
