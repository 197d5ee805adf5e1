package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

func UsageSection(tr *widget.VisibilityTracker, u content.UsageSection) g.Node {
	return RevealSection(tr,
		RevealOptions{Class: "py-16 sm:py-24 bg-white", Inner: "max-w-6xl mx-auto"},
		Div(
			Class("grid md:grid-cols-2 gap-8 md:gap-12 items-center max-w-5xl mx-auto"),
			Div(
				H2(Class(headingClass+" mb-4"), g.Text(u.Title)),
				P(Class("copy-accent text-[#6B7B8A] mb-6"), Markdown(u.Lead)),
				Div(
					Class("bg-[#F5F0E8] rounded-xl p-6 mb-6"),
					P(Class("text-[#3D4A54] font-medium mb-4"), g.Text(u.Scenario)),
					Ul(
						Class("space-y-3"),
						g.Group(g.Map(u.Steps, func(step string) g.Node {
							return Li(
								Class("flex items-start gap-2 text-sm text-[#3D4A54]"),
								Icon("lucide--check-circle size-4 text-[#8BA888] flex-shrink-0 mt-0.5", ""),
								g.Text(step),
							)
						})),
					),
				),
			),
			Div(
				Class("relative"),
				Img(Src(u.Mockup.Src), Alt(u.Mockup.Alt), Class("rounded-xl shadow-lg w-full"), g.Attr("loading", "lazy")),
				Div(
					Class("absolute -bottom-4 -right-4 bg-[#7BA7BC] text-white px-4 py-2 rounded-lg text-sm font-semibold shadow-lg"),
					g.Text(u.Tag),
				),
			),
		),
	)
}
