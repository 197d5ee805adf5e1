package widget

// PanelState is the visible state of one disclosure panel.
type PanelState int

const (
	Collapsed PanelState = iota
	Expanded
)

func (s PanelState) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

const noPanel = -1

// DisclosureList is an accordion over a fixed number of panels. At most one panel is
// expanded at a time.
type DisclosureList struct {
	n    int
	open int
}

// NewDisclosureList returns a list of n panels, all collapsed.
func NewDisclosureList(n int) *DisclosureList {
	if n < 0 {
		n = 0
	}
	return &DisclosureList{n: n, open: noPanel}
}

// Activate toggles panel i: an expanded panel collapses, any other panel expands and
// replaces the previously expanded one. Indexes outside the list are ignored.
func (d *DisclosureList) Activate(i int) {
	if i < 0 || i >= d.n {
		return
	}
	if d.open == i {
		d.open = noPanel
		return
	}
	d.open = i
}

// Expanded reports whether panel i is open.
func (d *DisclosureList) Expanded(i int) bool {
	return d.open != noPanel && d.open == i
}

// Open returns the expanded panel, if any.
func (d *DisclosureList) Open() (int, bool) {
	if d.open == noPanel {
		return 0, false
	}
	return d.open, true
}

// State returns the state of panel i.
func (d *DisclosureList) State(i int) PanelState {
	if d.Expanded(i) {
		return Expanded
	}
	return Collapsed
}

// States returns the state of every panel in order.
func (d *DisclosureList) States() []PanelState {
	out := make([]PanelState, d.n)
	for i := range out {
		out[i] = d.State(i)
	}
	return out
}

func (d *DisclosureList) Len() int { return d.n }

// Clone returns an independent copy.
func (d *DisclosureList) Clone() *DisclosureList {
	c := *d
	return &c
}

// After returns the list that activating i would produce, leaving d untouched.
func (d *DisclosureList) After(i int) *DisclosureList {
	c := d.Clone()
	c.Activate(i)
	return c
}
