package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

// TestimonialCarouselID is the swap target of the testimonial fragment.
const TestimonialCarouselID = "depoimentos-carousel"

func TestimonialsSection(tr *widget.VisibilityTracker, t content.TestimonialSection, sel *widget.RotatingSelector[content.Testimonial], links Links) g.Node {
	return RevealSection(tr,
		RevealOptions{Class: "py-16 sm:py-24 bg-[#F5F0E8]", Inner: "max-w-6xl mx-auto"},
		Div(
			Class("text-center mb-12"),
			H2(Class(headingClass+" mb-4"), g.Text(t.Title)),
			Pill("bg-[#8BA888]/15 text-[#6B8A68]", Icon("lucide--users size-4", ""), g.Text(t.Badge)),
		),
		TestimonialCarousel(sel, links),
	)
}

// TestimonialCarousel renders the active testimonial and one selector dot per item.
func TestimonialCarousel(sel *widget.RotatingSelector[content.Testimonial], links Links) g.Node {
	cur := sel.Current()

	dots := make([]g.Node, 0, sel.Len())
	for i, item := range sel.Items() {
		pageURL, fragmentURL := links.Testimonial(i)
		active := i == sel.Active()
		dotClass := "w-3 h-3 rounded-full transition-colors bg-[#7BA7BC]/30"
		if active {
			dotClass = "w-3 h-3 rounded-full transition-colors bg-[#7BA7BC]"
		}
		dots = append(dots, A(
			Href(pageURL),
			g.Attr("hx-get", fragmentURL),
			g.Attr("hx-target", "#"+TestimonialCarouselID),
			g.Attr("hx-swap", "outerHTML swap:200ms"),
			g.Attr("aria-label", fmt.Sprintf("Depoimento de %s", item.Name)),
			g.If(active, g.Attr("aria-current", "true")),
			Class(dotClass),
		))
	}

	return Div(
		ID(TestimonialCarouselID),
		Class("max-w-3xl mx-auto"),
		g.Attr("data-active", fmt.Sprint(sel.Active())),
		Div(
			Class("bg-white rounded-2xl p-6 sm:p-8 shadow-md"),
			Div(
				Class("flex flex-col sm:flex-row items-center gap-6"),
				Img(Src(cur.Photo), Alt(cur.Name), Class("w-20 h-20 rounded-full object-cover")),
				Div(
					Class("text-center sm:text-left flex-1"),
					Stars(cur.Stars),
					P(Class("text-[#3D4A54] mb-4 italic"), g.Textf("“%s”", cur.Quote)),
					P(Class("font-bold text-[#7BA7BC]"), g.Text(cur.Name)),
				),
			),
		),
		Div(Class("flex justify-center gap-2 mt-6"), g.Group(dots)),
	)
}
