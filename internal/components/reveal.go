package components

import (
	"fmt"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

// Variant is the entry pose a revealed element animates out of.
type Variant string

const (
	Rise  Variant = "rise"  // 40px below
	Slide Variant = "slide" // 30px to the left
	Pop   Variant = "pop"   // scaled to 80%
)

const (
	revealEntry = "entry"
	revealDone  = "done"
)

type RevealOptions struct {
	Variant Variant
	Class   string
	Style   string
	Inner   string
}

// RevealState is the data-reveal value for a tracker: the entry pose until the region has
// been seen, the resting pose afterwards.
func RevealState(tr *widget.VisibilityTracker) string {
	if tr.Visible() {
		return revealDone
	}
	return revealEntry
}

// RevealSection renders a page section whose content animates into place the first time
// its region becomes visible. The browser script flips data-reveal to "done"; the CSS
// owns the transition.
func RevealSection(tr *widget.VisibilityTracker, opts RevealOptions, children ...g.Node) g.Node {
	if opts.Variant == "" {
		opts.Variant = Rise
	}
	return Section(
		ID(tr.Region()),
		Class(opts.Class),
		g.If(opts.Style != "", Style(opts.Style)),
		g.Attr("data-reveal", RevealState(tr)),
		g.Attr("data-reveal-threshold", strconv.FormatFloat(tr.Threshold(), 'f', -1, 64)),
		Div(
			Class("w-full px-4 sm:px-6 lg:px-8 xl:px-12"),
			Div(
				Class(revealClass(opts.Variant, opts.Inner)),
				g.Group(children),
			),
		),
	)
}

// RevealItem is a child of a RevealSection that cascades in after its siblings.
func RevealItem(variant Variant, index int, step time.Duration, class string, children ...g.Node) g.Node {
	return Div(
		Class(revealClass(variant, class)),
		Stagger(index, step),
		g.Group(children),
	)
}

// Stagger delays the transition of the item at index by index*step.
func Stagger(index int, step time.Duration) g.Node {
	if index <= 0 || step <= 0 {
		return nil
	}
	return Style(fmt.Sprintf("transition-delay: %dms", (time.Duration(index) * step).Milliseconds()))
}

func revealClass(v Variant, extra string) string {
	c := "reveal reveal-" + string(v)
	if extra != "" {
		c += " " + extra
	}
	return c
}
