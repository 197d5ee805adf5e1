package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

const noscriptReveal = `[data-reveal] .reveal{opacity:1!important;transform:none!important}`

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Entre Consultas"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("pt-BR"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("icon"), Href("/static/images/favicon.png")),
				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href("/static/css/landing.css")),
				NoScript(StyleEl(g.Raw(noscriptReveal))),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Script(Src("https://unpkg.com/htmx.org@1.9.12"), g.Attr("defer")),
			),
			Body(
				Class("min-h-screen bg-[#FAFAF7]"),
				g.Group(content),

				Script(Src("/static/js/reveal.js"), g.Attr("defer")),
			),
		),
	})
}
