// Package widget holds the per-instance state machines behind the interactive parts of the
// landing page: the reveal-on-scroll visibility latch, the FAQ accordion and the
// testimonial selector. Each value owns its state; nothing here is shared between
// instances.
package widget

import (
	"errors"
	"math"
)

// ErrObserverUnavailable is returned by an Observer that cannot watch regions on the
// current host. Trackers treat it as "already visible" so content is never left hidden.
var ErrObserverUnavailable = errors.New("widget: visibility observation unavailable")

// CancelFunc releases a visibility subscription. It must be safe to call more than once.
type CancelFunc func()

// Observer is the host capability that reports how much of a region is inside the
// viewport. notify receives the visible fraction in [0,1] each time it changes.
type Observer interface {
	Subscribe(region string, threshold float64, notify func(ratio float64)) (CancelFunc, error)
}

// ClampThreshold maps a configured threshold into [0,1]. NaN is treated as 0.
func ClampThreshold(threshold float64) float64 {
	switch {
	case math.IsNaN(threshold), threshold < 0:
		return 0
	case threshold > 1:
		return 1
	default:
		return threshold
	}
}

// VisibilityTracker latches true the first time its region's visible fraction reaches the
// threshold, then detaches from the observer.
type VisibilityTracker struct {
	region    string
	threshold float64
	visible   bool
	cancel    CancelFunc
}

// NewVisibilityTracker subscribes one observation for region. A nil observer, or one that
// reports ErrObserverUnavailable, yields a tracker that is already visible.
func NewVisibilityTracker(obs Observer, region string, threshold float64) *VisibilityTracker {
	t := &VisibilityTracker{
		region:    region,
		threshold: ClampThreshold(threshold),
	}
	if obs == nil {
		t.visible = true
		return t
	}

	cancel, err := obs.Subscribe(region, t.threshold, t.observe)
	if err != nil {
		// Any failure degrades the same way as ErrObserverUnavailable.
		t.visible = true
		return t
	}
	if t.visible {
		// The observer reported synchronously during Subscribe.
		if cancel != nil {
			cancel()
		}
		return t
	}
	t.cancel = cancel
	return t
}

func (t *VisibilityTracker) observe(ratio float64) {
	if t.visible {
		return
	}
	if ratio < t.threshold {
		return
	}
	t.visible = true
	t.release()
}

func (t *VisibilityTracker) release() {
	if t.cancel == nil {
		return
	}
	cancel := t.cancel
	t.cancel = nil
	cancel()
}

// Visible reports whether the region has been seen. Once true it stays true.
func (t *VisibilityTracker) Visible() bool { return t.visible }

// Region returns the tracked region id.
func (t *VisibilityTracker) Region() string { return t.region }

// Threshold returns the clamped threshold.
func (t *VisibilityTracker) Threshold() float64 { return t.threshold }

// Observing reports whether the tracker still holds a subscription.
func (t *VisibilityTracker) Observing() bool { return t.cancel != nil }

// Close releases the observation if it is still held. It never changes Visible.
func (t *VisibilityTracker) Close() {
	t.release()
}
