package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/isaac-munyaka/portfolio"
	"github.com/isaac-munyaka/portfolio/markdown"
)

// HomePage renders the whole portfolio page.
func HomePage(page portfolio.HomePage) g.Node {
	p := page.Profile
	return document(page.Meta,
		[]g.Node{
			Script(Type("application/ld+json"), g.Raw(portfolio.PersonJsonLD(p, page.Site))),
		},
		hero(p),
		about(p),
		skills(p.Skills),
		projects(page.Projects, page.CSRFToken),
		Lightbox(page.Lightbox, page.CSRFToken),
		contact(p),
	)
}

func hero(p portfolio.Profile) g.Node {
	return Section(
		Class("hero"),
		H1(Class("hero-title fade-down"), g.Text(p.Name)),
		g.If(p.Tagline != "", P(Class("hero-tagline"), g.Text(p.Tagline))),
		g.If(markdown.SafeURL(p.ResumeURL) != "",
			A(
				Href(markdown.SafeURL(p.ResumeURL)),
				g.Attr("download"),
				Class("button"),
				g.Text("Download Resume"),
			),
		),
	)
}

func about(p portfolio.Profile) g.Node {
	if p.About == "" {
		return nil
	}
	return Section(
		ID("about"),
		Class("section narrow"),
		H2(Class("section-title"), g.Text("About Me")),
		Div(Class("prose"), markdownNode(p.About)),
	)
}

func skills(list []string) g.Node {
	if len(list) == 0 {
		return nil
	}
	return Section(
		ID("skills"),
		Class("section muted"),
		H2(Class("section-title center"), g.Text("Skills & Tools")),
		Div(
			Class("skills-grid"),
			g.Map(list, func(skill string) g.Node {
				return Div(Class("skill fade-up"), g.Text(skill))
			}),
		),
	)
}

func projects(list []portfolio.Project, csrfToken string) g.Node {
	return Section(
		ID("projects"),
		Class("section wide"),
		H2(Class("section-title center"), g.Text("Projects")),
		Div(
			Class("projects-grid"),
			g.Map(list, func(p portfolio.Project) g.Node {
				return projectCard(p, csrfToken)
			}),
		),
	)
}

func projectCard(p portfolio.Project, csrfToken string) g.Node {
	link := markdown.SafeURL(p.Link)
	return Div(
		ID("project-"+portfolio.Slugify(p.Title)),
		Class("card fade-up"),
		g.If(p.HasImage(), openForm(p, csrfToken)),
		H3(Class("card-title"), g.Text(p.Title)),
		Div(Class("card-description"), markdownNode(p.Description)),
		g.If(len(p.Tech) > 0, P(Class("card-tech"), g.Text(p.TechLine()))),
		g.If(link != "",
			A(
				Href(link),
				Target("_blank"),
				Rel("noopener noreferrer"),
				Class("card-link"),
				g.Text("View on GitHub →"),
			),
		),
	)
}

// openForm wraps the card image in a form so the lightbox opens without
// JavaScript; htmx turns the post into a fragment swap of #lightbox.
func openForm(p portfolio.Project, csrfToken string) g.Node {
	return Form(
		Method("post"),
		Action("/lightbox/open/"),
		g.Attr("hx-post", "/lightbox/open/"),
		g.Attr("hx-target", "#"+lightboxID),
		g.Attr("hx-swap", "outerHTML"),
		Input(Type("hidden"), Name("_csrf"), Value(csrfToken)),
		Input(Type("hidden"), Name("image"), Value(p.Image)),
		Button(
			Type("submit"),
			Class("card-image"),
			g.Attr("aria-label", "Enlarge image: "+p.Title),
			Img(
				Src(portfolio.ThumbnailURL(p.Image)),
				Alt(p.Title),
				g.Attr("loading", "lazy"),
			),
		),
	)
}

func contact(p portfolio.Profile) g.Node {
	var links []g.Node
	for _, l := range p.ContactLinks() {
		href := markdown.SafeURL(l.URL)
		if href == "" {
			continue
		}
		links = append(links, A(
			Href(href),
			g.If(l.External, Target("_blank")),
			g.If(l.External, Rel("noopener noreferrer")),
			g.Text(l.Label),
		))
	}
	return Section(
		ID("contact"),
		Class("contact"),
		H2(Class("section-title"), g.Text("Get in Touch")),
		g.If(p.ContactBlurb != "", P(g.Text(p.ContactBlurb))),
		Div(Class("contact-links"), g.Group(links)),
	)
}
