package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

func ComparisonSection(tr *widget.VisibilityTracker, c content.ComparisonSection) g.Node {
	return RevealSection(tr,
		RevealOptions{Class: "py-16 sm:py-24 bg-[#FAFAF7]", Inner: "max-w-6xl mx-auto"},
		H2(Class(headingClass+" text-center mb-12"), g.Text(c.Title)),
		Div(
			Class("grid md:grid-cols-3 gap-6 max-w-5xl mx-auto"),
			g.Group(g.Map(c.Columns, comparisonColumn)),
		),
	)
}

func comparisonColumn(col content.ComparisonColumn) g.Node {
	if !col.Featured {
		return Div(
			Class("bg-white rounded-xl p-6 shadow-sm"),
			H3(Class("font-bold text-[#3D4A54] mb-4 text-center"), g.Text(col.Title)),
			Ul(
				Class("space-y-3 text-sm text-[#6B7B8A]"),
				g.Group(g.Map(col.Points, func(p string) g.Node {
					return Li(Class("flex items-start gap-2"), Span(Class("text-[#B8B8D1]"), g.Text("•")), g.Text(p))
				})),
			),
		)
	}

	return Div(
		Class("bg-white rounded-xl p-6 shadow-lg border-2 border-[#7BA7BC] relative"),
		g.Attr("data-featured", ""),
		g.If(col.FeaturedTag != "", Div(
			Class("absolute -top-3 left-1/2 -translate-x-1/2 bg-[#7BA7BC] text-white px-3 py-1 rounded-full text-xs font-bold whitespace-nowrap"),
			g.Text(col.FeaturedTag),
		)),
		H3(Class("font-bold text-[#7BA7BC] mb-4 text-center"), g.Text(col.Title)),
		Ul(
			Class("space-y-3 text-sm text-[#3D4A54]"),
			g.Group(g.Map(col.Points, func(p string) g.Node {
				return Li(
					Class("flex items-start gap-2"),
					Icon("lucide--check-circle size-4 text-[#8BA888] flex-shrink-0 mt-0.5", ""),
					Span(Class("font-medium"), g.Text(p)),
				)
			})),
		),
	)
}
