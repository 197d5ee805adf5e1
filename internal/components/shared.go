package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/format"
)

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify glyph. iconClass is "set--name [extra classes]".
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconCircle(icon, size string) g.Node {
	return Div(
		Class(fmt.Sprintf("%s bg-[#7BA7BC] text-white rounded-full flex items-center justify-center", size)),
		Icon(icon, ""),
	)
}

func Pill(class string, children ...g.Node) g.Node {
	return Span(
		Class("inline-flex items-center gap-2 px-4 py-2 rounded-full text-sm font-semibold "+class),
		g.Group(children),
	)
}

// Markdown renders sanitized inline markdown.
func Markdown(md string) g.Node {
	return g.Raw(string(format.Inline(md)))
}

func Stars(n int) g.Node {
	stars := make([]g.Node, 0, n)
	for i := 0; i < n; i++ {
		stars = append(stars, Icon("lucide--star size-5 text-[#A8C8D8] star-filled", ""))
	}
	return Div(
		Class("flex justify-center sm:justify-start gap-1 mb-3"),
		g.Attr("aria-label", fmt.Sprintf("%d de 5 estrelas", n)),
		g.Attr("data-stars", fmt.Sprint(n)),
		g.Group(stars),
	)
}

// CheckoutButton links to the hosted checkout. Every purchase control goes through here.
func CheckoutButton(checkoutURL, label, class string) g.Node {
	return A(
		Href(checkoutURL),
		g.Attr("data-checkout", ""),
		g.Attr("rel", "noopener"),
		Class(class),
		g.Text(label),
	)
}

const (
	btnPrimary = "bg-[#7BA7BC] text-white font-semibold px-8 py-4 rounded-xl inline-block text-lg hover:bg-[#5A8A9E] hover:scale-[1.02] transition-all shadow-lg shadow-[#7BA7BC]/25"
	btnSage    = "bg-[#8BA888] text-white font-semibold px-8 py-4 rounded-xl inline-block text-lg hover:bg-[#6B8A68] hover:scale-[1.02] transition-all shadow-lg shadow-[#8BA888]/25"
	btnWhite   = "inline-block bg-white text-[#7BA7BC] font-bold px-10 py-5 rounded-xl text-lg hover:bg-[#FAFAF7] hover:scale-[1.02] transition-all shadow-xl"
	btnBlock   = "bg-[#7BA7BC] text-white font-bold px-8 py-4 rounded-xl block w-full text-lg hover:bg-[#5A8A9E] hover:scale-[1.02] transition-all shadow-lg shadow-[#7BA7BC]/25"
	btnOutline = "border-2 border-[#7BA7BC] text-[#7BA7BC] font-semibold px-8 py-4 rounded-xl block w-full hover:bg-[#7BA7BC] hover:text-white transition-all"
)

const (
	headingClass = "text-2xl sm:text-3xl md:text-4xl font-bold text-[#3D4A54]"
	cardHover    = "hover:-translate-y-1 hover:shadow-lg hover:shadow-[#7BA7BC]/10 transition-all"
)
