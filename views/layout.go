package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/isaac-munyaka/portfolio"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// document wraps body in the shared <html> shell.
func document(meta portfolio.PageMeta, head []g.Node, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(meta.Title)),
				g.If(meta.Description != "", Meta(Name("description"), Content(meta.Description))),
				g.If(meta.URL != "", Link(Rel("canonical"), Href(meta.URL))),
				g.If(meta.URL != "", Meta(g.Attr("property", "og:url"), Content(meta.URL))),
				Meta(g.Attr("property", "og:title"), Content(meta.Title)),
				g.If(meta.OGType != "", Meta(g.Attr("property", "og:type"), Content(meta.OGType))),
				Link(Rel("icon"), Href("/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/public/site.css")),
				Script(Src(htmxSrc), g.Attr("defer")),
				g.Group(head),
			),
			Body(append([]g.Node{Class("page")}, body...)...),
		),
	)
}
