package page

import (
	"net/url"
	"strconv"

	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

const (
	ParamFAQ         = "faq"
	ParamTestimonial = "depoimento"

	FAQFragmentPath         = "/fragments/faq"
	TestimonialFragmentPath = "/fragments/depoimentos"
)

// State is the widget state a page instance starts from. It travels in the query
// string so every open tab owns its own accordion and selector.
type State struct {
	// OpenFAQ is the expanded FAQ panel, or -1 for none.
	OpenFAQ             int
	SelectedTestimonial int
}

func Initial() State {
	return State{OpenFAQ: -1}
}

// StateFromQuery reads the widget parameters. Missing or malformed values fall back to
// the initial state; range checks happen against the content in New.
func StateFromQuery(q url.Values) State {
	st := Initial()
	if v, err := strconv.Atoi(q.Get(ParamFAQ)); err == nil && v >= 0 {
		st.OpenFAQ = v
	}
	if v, err := strconv.Atoi(q.Get(ParamTestimonial)); err == nil && v >= 0 {
		st.SelectedTestimonial = v
	}
	return st
}

// Query encodes the non-default parts of the state.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.OpenFAQ >= 0 {
		q.Set(ParamFAQ, strconv.Itoa(s.OpenFAQ))
	}
	if s.SelectedTestimonial > 0 {
		q.Set(ParamTestimonial, strconv.Itoa(s.SelectedTestimonial))
	}
	return q
}

// URL is the full-page address of the state, scrolled to anchor.
func (s State) URL(anchor string) string {
	u := url.URL{Path: "/", RawQuery: s.Query().Encode(), Fragment: anchor}
	return u.String()
}

// FAQ implements components.Links.
func (s State) FAQ(next *widget.DisclosureList) (string, string) {
	ns := s
	ns.OpenFAQ = -1
	if i, ok := next.Open(); ok {
		ns.OpenFAQ = i
	}

	frag := url.URL{Path: FAQFragmentPath, RawQuery: ns.Query().Encode()}
	return ns.URL("faq"), frag.String()
}

// Testimonial implements components.Links.
func (s State) Testimonial(i int) (string, string) {
	ns := s
	ns.SelectedTestimonial = i

	frag := url.URL{Path: TestimonialFragmentPath, RawQuery: ns.Query().Encode()}
	return ns.URL("depoimentos"), frag.String()
}
