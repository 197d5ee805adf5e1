package widget

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Unavailable is an Observer for hosts without any visibility mechanism.
type Unavailable struct{}

func (Unavailable) Subscribe(string, float64, func(float64)) (CancelFunc, error) {
	return nil, ErrObserverUnavailable
}

// ClientObserver hands observation over to the browser: the rendered markup carries the
// region and threshold, and the reveal script performs the intersection checks. The
// server side never reports a ratio, so trackers stay in their entry state until the
// page instance is torn down. Live counts subscriptions still held by unreleased pages.
type ClientObserver struct {
	live atomic.Int64
}

func (c *ClientObserver) Subscribe(string, float64, func(float64)) (CancelFunc, error) {
	c.live.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { c.live.Add(-1) })
	}, nil
}

// Live returns the number of subscriptions not yet released.
func (c *ClientObserver) Live() int64 { return c.live.Load() }

// ManualObserver is driven by hand, for tests and previews. Report delivers a visible
// fraction to every live subscription on a region.
type ManualObserver struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func(float64)
}

func NewManualObserver() *ManualObserver {
	return &ManualObserver{subs: make(map[string]map[int]func(float64))}
}

func (m *ManualObserver) Subscribe(region string, _ float64, notify func(float64)) (CancelFunc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	if m.subs[region] == nil {
		m.subs[region] = make(map[int]func(float64))
	}
	m.subs[region][id] = notify

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs[region], id)
		if len(m.subs[region]) == 0 {
			delete(m.subs, region)
		}
	}, nil
}

// Report sends ratio to the subscribers of region. Callbacks run without the lock held
// so they may cancel their own subscription.
func (m *ManualObserver) Report(region string, ratio float64) {
	m.mu.Lock()
	ids := make([]int, 0, len(m.subs[region]))
	for id := range m.subs[region] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	notify := make([]func(float64), 0, len(ids))
	for _, id := range ids {
		notify = append(notify, m.subs[region][id])
	}
	m.mu.Unlock()

	for _, fn := range notify {
		fn(ratio)
	}
}

// Subscriptions returns how many subscriptions are live for region, or across all
// regions when region is empty.
func (m *ManualObserver) Subscriptions(region string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if region != "" {
		return len(m.subs[region])
	}
	n := 0
	for _, s := range m.subs {
		n += len(s)
	}
	return n
}
