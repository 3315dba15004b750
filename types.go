package portfolio

import "strings"

// Project is one portfolio entry rendered as a card. Image is optional.
type Project struct {
	Title       string   `koanf:"title"`
	Description string   `koanf:"description"`
	Tech        []string `koanf:"tech"`
	Link        string   `koanf:"link"`
	Image       string   `koanf:"image"`
}

// HasImage reports whether the card shows a clickable image.
func (p Project) HasImage() bool {
	return p.Image != ""
}

// TechLine joins the tech tags the way the card displays them.
func (p Project) TechLine() string {
	return strings.Join(p.Tech, ", ")
}

// Profile carries the hero, about, skills and contact content.
type Profile struct {
	Name         string   `koanf:"name"`
	Tagline      string   `koanf:"tagline"`
	ResumeURL    string   `koanf:"resume_url"`
	About        string   `koanf:"about"` // Markdown
	Skills       []string `koanf:"skills"`
	ContactBlurb string   `koanf:"contact_blurb"`
	Email        string   `koanf:"email"`
	GitHub       string   `koanf:"github"`
	LinkedIn     string   `koanf:"linkedin"`
}

// Link is an outbound link shown in the contact section.
type Link struct {
	Label    string
	URL      string
	External bool // open in a new tab
}

// ContactLinks returns the email, GitHub and LinkedIn links, skipping blanks.
func (p Profile) ContactLinks() []Link {
	var links []Link
	if p.Email != "" {
		links = append(links, Link{Label: "Email", URL: "mailto:" + p.Email})
	}
	if p.GitHub != "" {
		links = append(links, Link{Label: "GitHub", URL: p.GitHub, External: true})
	}
	if p.LinkedIn != "" {
		links = append(links, Link{Label: "LinkedIn", URL: p.LinkedIn, External: true})
	}
	return links
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string
}
