package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

func HeroSection(tr *widget.VisibilityTracker, hero content.Hero, checkoutURL string) g.Node {
	return RevealSection(tr,
		RevealOptions{
			Class: "relative min-h-screen flex items-center justify-center pt-16 bg-cover bg-center",
			Style: fmt.Sprintf("background-image: linear-gradient(180deg, rgba(250,250,247,0.95), rgba(250,250,247,0.88)), url(%s)", hero.Background),
			Inner: "max-w-3xl mx-auto text-center py-16 sm:py-24",
		},
		Div(
			Class("mb-6"),
			Pill("bg-[#7BA7BC]/15 text-[#5A8A9E] font-medium", Icon("lucide--wind size-4", ""), g.Text(hero.Badge)),
		),
		H1(
			Class("text-3xl sm:text-4xl md:text-5xl lg:text-6xl font-bold text-[#3D4A54] leading-tight mb-6"),
			g.Text(hero.Title+" "),
			Span(Class("text-[#7BA7BC]"), g.Text(hero.Highlight)),
			g.Text(" "+hero.TitleAfter),
		),
		P(Class("text-lg sm:text-xl text-[#6B7B8A] mb-4"), g.Text(hero.Subtitle)),
		P(Class("copy-strong text-base sm:text-lg text-[#6B7B8A] mb-8 max-w-2xl mx-auto"), Markdown(hero.Lead)),
		Div(
			Class("space-y-4"),
			CheckoutButton(checkoutURL, hero.CTA, btnPrimary+" sm:text-xl"),
			P(
				Class("text-sm text-[#6B7B8A] flex items-center justify-center gap-2"),
				Icon("lucide--lock size-4", ""),
				g.Text(hero.Note),
			),
		),
		A(
			Href("#dores"),
			Class("scroll-cue absolute bottom-8 left-1/2 -translate-x-1/2"),
			g.Attr("aria-label", "Rolar para baixo"),
			Icon("lucide--chevron-down size-8 text-[#7BA7BC]", ""),
		),
	)
}
