// Package page composes the landing page from its sections and owns the widget state of
// one rendered instance.
package page

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"

	"github.com/vidaemdestaque/entreconsultas/internal/components"
	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

// Region ids double as section anchors.
const (
	RegionHero         = "hero"
	RegionPains        = "dores"
	RegionAuthors      = "criadoras"
	RegionModules      = "produto"
	RegionUsage        = "como-funciona"
	RegionTestimonials = "depoimentos"
	RegionAudience     = "para-quem"
	RegionGuarantee    = "garantia"
	RegionComparison   = "comparacao"
	RegionOffer        = "oferta"
	RegionFAQ          = "faq"
)

type region struct {
	id        string
	threshold float64
}

// Sections in display order with the visible fraction that reveals them.
var regions = []region{
	{RegionHero, 0.1},
	{RegionPains, 0.2},
	{RegionAuthors, 0.2},
	{RegionModules, 0.15},
	{RegionUsage, 0.2},
	{RegionTestimonials, 0.2},
	{RegionAudience, 0.2},
	{RegionGuarantee, 0.2},
	{RegionComparison, 0.2},
	{RegionOffer, 0.2},
	{RegionFAQ, 0.2},
}

// Page is one rendered instance of the landing page. Its trackers, accordion and selector
// belong to this instance alone; Close must be called once it has been rendered.
type Page struct {
	landing      *content.Landing
	state        State
	trackers     map[string]*widget.VisibilityTracker
	faq          *widget.DisclosureList
	testimonials *widget.RotatingSelector[content.Testimonial]
}

// New builds a page instance from static copy and the requested widget state. Out of
// range state values fall back to the initial state.
func New(l *content.Landing, obs widget.Observer, st State) (*Page, error) {
	sel, err := widget.NewRotatingSelector(l.Testimonials.Items)
	if err != nil {
		return nil, fmt.Errorf("testimonials: %w", err)
	}
	if !sel.Select(st.SelectedTestimonial) {
		st.SelectedTestimonial = 0
	}

	faq := widget.NewDisclosureList(len(l.FAQ.Items))
	faq.Activate(st.OpenFAQ)
	if i, ok := faq.Open(); ok {
		st.OpenFAQ = i
	} else {
		st.OpenFAQ = -1
	}

	p := &Page{
		landing:      l,
		state:        st,
		trackers:     make(map[string]*widget.VisibilityTracker, len(regions)),
		faq:          faq,
		testimonials: sel,
	}
	for _, r := range regions {
		p.trackers[r.id] = widget.NewVisibilityTracker(obs, r.id, r.threshold)
	}
	return p, nil
}

func (p *Page) State() State { return p.state }

func (p *Page) FAQ() *widget.DisclosureList { return p.faq }

func (p *Page) Testimonials() *widget.RotatingSelector[content.Testimonial] { return p.testimonials }

// Tracker returns the visibility tracker of a section region.
func (p *Page) Tracker(id string) *widget.VisibilityTracker { return p.trackers[id] }

// Node is the full document.
func (p *Page) Node() g.Node {
	l := p.landing
	checkout := l.CheckoutURL
	return components.Layout(
		components.PageConfig{
			Title:       l.Meta.Title,
			Description: l.Meta.Description,
			OGImage:     l.Meta.OGImage,
		},
		components.StickyBar(l.StickyBar),
		g.El("main",
			components.HeroSection(p.trackers[RegionHero], l.Hero, checkout),
			components.PainsSection(p.trackers[RegionPains], l.Pains),
			components.AuthorsSection(p.trackers[RegionAuthors], l.Authors),
			components.ModulesSection(p.trackers[RegionModules], l.Modules, checkout),
			components.UsageSection(p.trackers[RegionUsage], l.Usage),
			components.TestimonialsSection(p.trackers[RegionTestimonials], l.Testimonials, p.testimonials, p.state),
			components.AudienceSection(p.trackers[RegionAudience], l.Audience, checkout),
			components.GuaranteeSection(p.trackers[RegionGuarantee], l.Guarantee, checkout),
			components.ComparisonSection(p.trackers[RegionComparison], l.Comparison),
			components.OfferSection(p.trackers[RegionOffer], l.Offer, checkout),
			components.FAQSection(p.trackers[RegionFAQ], l.FAQ, p.faq, p.state, checkout, l.Footer.Copyright),
		),
	)
}

// FAQNode is the accordion fragment.
func (p *Page) FAQNode() g.Node {
	return components.FAQList(p.landing.FAQ.Items, p.faq, p.state)
}

// TestimonialNode is the carousel fragment.
func (p *Page) TestimonialNode() g.Node {
	return components.TestimonialCarousel(p.testimonials, p.state)
}

func (p *Page) Render(w io.Writer) error {
	return p.Node().Render(w)
}

// Close releases every visibility subscription, whether or not it ever fired.
func (p *Page) Close() {
	for _, tr := range p.trackers {
		tr.Close()
	}
}
