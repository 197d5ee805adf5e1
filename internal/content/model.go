package content

// Item is the record shape shared by the list sections: pain points, product modules,
// audience profiles, comparison rows and FAQ entries.
type Item struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Icon  string `yaml:"icon,omitempty"`
	Index int    `yaml:"index,omitempty"`
}

type Testimonial struct {
	Name  string `yaml:"name"`
	Photo string `yaml:"photo"`
	Quote string `yaml:"quote"`
	Stars int    `yaml:"stars"`
}

type Image struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Landing is the full copy of the page, in display order.
type Landing struct {
	Meta         Meta               `yaml:"meta"`
	CheckoutURL  string             `yaml:"checkout_url"`
	StickyBar    StickyBar          `yaml:"sticky_bar"`
	Hero         Hero               `yaml:"hero"`
	Pains        PainsSection       `yaml:"pains"`
	Authors      AuthorsSection     `yaml:"authors"`
	Modules      ModulesSection     `yaml:"modules"`
	Usage        UsageSection       `yaml:"usage"`
	Testimonials TestimonialSection `yaml:"testimonials"`
	Audience     AudienceSection    `yaml:"audience"`
	Guarantee    GuaranteeSection   `yaml:"guarantee"`
	Comparison   ComparisonSection  `yaml:"comparison"`
	Offer        OfferSection       `yaml:"offer"`
	FAQ          FAQSection         `yaml:"faq"`
	Footer       Footer             `yaml:"footer"`
}

type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

type StickyBar struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

type Hero struct {
	Badge      string `yaml:"badge"`
	Title      string `yaml:"title"`
	Highlight  string `yaml:"highlight"`
	TitleAfter string `yaml:"title_after"`
	Subtitle   string `yaml:"subtitle"`
	// Lead is markdown; bold text is rendered highlighted.
	Lead       string `yaml:"lead"`
	CTA        string `yaml:"cta"`
	Note       string `yaml:"note"`
	Background string `yaml:"background"`
}

type PainsSection struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

type AuthorsSection struct {
	Badge string   `yaml:"badge"`
	Title string   `yaml:"title"`
	Photo Image    `yaml:"photo"`
	Bio   []string `yaml:"bio"`
	Seal  string   `yaml:"seal"`
}

type ModulesSection struct {
	Badge    string `yaml:"badge"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Items    []Item `yaml:"items"`
	CTA      string `yaml:"cta"`
}

type UsageSection struct {
	Title    string   `yaml:"title"`
	Lead     string   `yaml:"lead"`
	Scenario string   `yaml:"scenario"`
	Steps    []string `yaml:"steps"`
	Mockup   Image    `yaml:"mockup"`
	Tag      string   `yaml:"tag"`
}

type TestimonialSection struct {
	Title string        `yaml:"title"`
	Badge string        `yaml:"badge"`
	Items []Testimonial `yaml:"items"`
}

type AudienceSection struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
	CTA   string `yaml:"cta"`
}

type GuaranteeSection struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Body     string `yaml:"body"`
	CTA      string `yaml:"cta"`
}

type ComparisonColumn struct {
	Title       string   `yaml:"title"`
	Points      []string `yaml:"points"`
	Featured    bool     `yaml:"featured,omitempty"`
	FeaturedTag string   `yaml:"featured_tag,omitempty"`
}

type ComparisonSection struct {
	Title   string             `yaml:"title"`
	Columns []ComparisonColumn `yaml:"columns"`
}

type Installments struct {
	Count       int    `yaml:"count"`
	AmountCents int64  `yaml:"amount_cents"`
	Prefix      string `yaml:"prefix"`
	Suffix      string `yaml:"suffix"`
}

type Perk struct {
	Icon  string `yaml:"icon"`
	Color string `yaml:"color,omitempty"`
	Text  string `yaml:"text"`
}

type OfferSection struct {
	Kicker       string       `yaml:"kicker"`
	Title        string       `yaml:"title"`
	Subtitle     string       `yaml:"subtitle"`
	PriceLabel   string       `yaml:"price_label"`
	PriceCents   int64        `yaml:"price_cents"`
	Installments Installments `yaml:"installments"`
	CTA          string       `yaml:"cta"`
	AltCTA       string       `yaml:"alt_cta"`
	Perks        []Perk       `yaml:"perks"`
	Trust        []Perk       `yaml:"trust"`
	Background   string       `yaml:"background"`
}

type FAQSection struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
	CTA   string `yaml:"cta"`
}

type Footer struct {
	Copyright string `yaml:"copyright"`
}
