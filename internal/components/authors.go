package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

func AuthorsSection(tr *widget.VisibilityTracker, a content.AuthorsSection) g.Node {
	return RevealSection(tr,
		RevealOptions{Class: "py-16 sm:py-24 bg-white", Inner: "max-w-6xl mx-auto"},
		Div(Class("text-center mb-10"), Pill("bg-[#8BA888]/15 text-[#6B8A68]", g.Text(a.Badge))),
		Div(
			Class("flex flex-col md:flex-row items-center gap-8 md:gap-12 max-w-4xl mx-auto"),
			Div(
				Class("flex-shrink-0 relative"),
				Img(
					Src(a.Photo.Src),
					Alt(a.Photo.Alt),
					Class("w-48 h-48 sm:w-56 sm:h-56 rounded-full object-cover border-4 border-[#A8C8D8]/40 shadow-md"),
				),
				Div(Class("absolute -bottom-2 -right-2 bg-[#7BA7BC] text-white p-2 rounded-full"), Icon("lucide--heart size-5", "")),
			),
			Div(
				Class("text-center md:text-left"),
				H2(Class("text-2xl sm:text-3xl font-bold text-[#3D4A54] mb-4"), g.Text(a.Title)),
				g.Group(g.Map(a.Bio, func(p string) g.Node {
					return P(Class("copy-strong copy-accent-em text-[#6B7B8A] mb-4 leading-relaxed"), Markdown(p))
				})),
				Div(
					Class("mt-6"),
					Pill("bg-[#8BA888]/15 text-[#6B8A68]", Icon("lucide--check-circle size-4", ""), g.Text(a.Seal)),
				),
			),
		),
	)
}
