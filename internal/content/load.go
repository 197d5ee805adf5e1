package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed landing.yaml
var defaultLanding []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid landing content")

// Default returns the copy compiled into the binary.
func Default() (*Landing, error) {
	return Parse(defaultLanding)
}

// Load reads and validates a landing file from disk.
func Load(path string) (*Landing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes YAML strictly; unknown keys are rejected so typos surface early.
func Parse(data []byte) (*Landing, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var l Landing
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("decode landing yaml: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks the invariants the page relies on.
func (l *Landing) Validate() error {
	if err := ValidateCheckoutURL(l.CheckoutURL); err != nil {
		return err
	}
	if len(l.Testimonials.Items) == 0 {
		return fmt.Errorf("%w: at least one testimonial is required", ErrInvalid)
	}
	for i, t := range l.Testimonials.Items {
		if t.Stars < 1 || t.Stars > 5 {
			return fmt.Errorf("%w: testimonial %d (%s) has %d stars, want 1..5", ErrInvalid, i, t.Name, t.Stars)
		}
	}
	if len(l.FAQ.Items) == 0 {
		return fmt.Errorf("%w: at least one FAQ entry is required", ErrInvalid)
	}
	if l.Offer.PriceCents < 0 || l.Offer.Installments.AmountCents < 0 || l.Offer.Installments.Count < 0 {
		return fmt.Errorf("%w: offer prices must not be negative", ErrInvalid)
	}
	return nil
}

// ValidateCheckoutURL requires an absolute https URL.
func ValidateCheckoutURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: checkout url: %v", ErrInvalid, err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: checkout url %q must be an absolute https URL", ErrInvalid, raw)
	}
	return nil
}

// WithCheckoutURL returns a copy of l pointing every call to action at checkoutURL.
func (l *Landing) WithCheckoutURL(checkoutURL string) (*Landing, error) {
	if err := ValidateCheckoutURL(checkoutURL); err != nil {
		return nil, err
	}
	c := *l
	c.CheckoutURL = checkoutURL
	return &c, nil
}
