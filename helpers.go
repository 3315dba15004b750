package portfolio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// Slugify converts a title to a URL-safe slug, used for card anchors.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// PersonJsonLD returns a Schema.org Person JSON-LD block for the profile.
// External contact links are listed under sameAs.
func PersonJsonLD(p Profile, cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Name,
		"url":      BuildURL(cfg.URL),
	}
	if p.Tagline != "" {
		data["jobTitle"] = p.Tagline
	}
	if p.Email != "" {
		data["email"] = "mailto:" + p.Email
	}
	var sameAs []string
	for _, l := range p.ContactLinks() {
		if l.External {
			sameAs = append(sameAs, l.URL)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	if len(p.Skills) > 0 {
		data["knowsAbout"] = p.Skills
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
