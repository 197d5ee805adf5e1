package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

// FAQListID is the swap target of the FAQ fragment.
const FAQListID = "faq-list"

// FAQOpenClass marks the expanded panel. htmx settles class changes between swaps, so
// the panel transition is keyed on it rather than on data-state.
const FAQOpenClass = "faq-open"

const faqItemClass = "faq-item border border-[#F5F0E8] rounded-xl overflow-hidden"

// Links builds the two URLs behind every widget control: the full page carrying the
// next state (works without JavaScript) and the fragment htmx swaps in.
type Links interface {
	FAQ(next *widget.DisclosureList) (pageURL, fragmentURL string)
	Testimonial(i int) (pageURL, fragmentURL string)
}

func FAQSection(tr *widget.VisibilityTracker, f content.FAQSection, list *widget.DisclosureList, links Links, checkoutURL, copyright string) g.Node {
	return RevealSection(tr,
		RevealOptions{Class: "py-16 sm:py-24 bg-white", Inner: "max-w-3xl mx-auto"},
		H2(Class(headingClass+" text-center mb-12"), g.Text(f.Title)),
		FAQList(f.Items, list, links),
		Div(Class("text-center mt-12"), CheckoutButton(checkoutURL, f.CTA, btnPrimary+" font-bold")),
		PageFooter(copyright),
	)
}

// FAQList renders every panel. Collapsed panels keep their body in the markup so the
// height/opacity transition runs both ways when htmx settles the faq-open class.
func FAQList(items []content.Item, list *widget.DisclosureList, links Links) g.Node {
	panels := make([]g.Node, 0, len(items))
	for i, item := range items {
		expanded := list.Expanded(i)
		pageURL, fragmentURL := links.FAQ(list.After(i))
		chevron := "lucide--chevron-down"
		itemClass := faqItemClass
		if expanded {
			chevron = "lucide--chevron-up"
			itemClass += " " + FAQOpenClass
		}

		panels = append(panels, Div(
			ID(fmt.Sprintf("faq-item-%d", i)),
			Class(itemClass),
			g.Attr("data-state", list.State(i).String()),
			A(
				Href(pageURL),
				g.Attr("hx-get", fragmentURL),
				g.Attr("hx-target", "#"+FAQListID),
				g.Attr("hx-swap", "outerHTML"),
				g.Attr("aria-expanded", fmt.Sprint(expanded)),
				g.Attr("aria-controls", fmt.Sprintf("faq-panel-%d", i)),
				Class("w-full flex items-center justify-between p-4 sm:p-5 text-left bg-[#F5F0E8] hover:bg-[#F5F0E8]/80 transition-colors"),
				Span(Class("font-semibold text-[#3D4A54] text-sm sm:text-base"), g.Text(item.Title)),
				Icon(chevron+" size-5 text-[#7BA7BC] flex-shrink-0", ""),
			),
			Div(
				ID(fmt.Sprintf("faq-panel-%d", i)),
				Class("faq-panel"),
				g.Attr("aria-hidden", fmt.Sprint(!expanded)),
				Div(
					Class("faq-panel-body"),
					Div(Class("p-4 sm:p-5 text-[#6B7B8A] text-sm leading-relaxed"), g.Text(item.Body)),
				),
			),
		))
	}

	return Div(ID(FAQListID), Class("space-y-4"), g.Group(panels))
}
