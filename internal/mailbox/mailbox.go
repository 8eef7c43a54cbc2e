// Package mailbox provides the thread-safe gesture channel between the
// detection pipeline and the consumer control loop.
package mailbox

import (
	"sync"
	"time"

	"github.com/ayusman/gestix/internal/gesture"
)

// Timing defaults, matching the tuned values of the reference deployment.
const (
	// DefaultDebounce is the minimum interval before an identical repeated
	// gesture refreshes the write timestamp.
	DefaultDebounce = 120 * time.Millisecond
	// DefaultStaleness is the maximum age of the last write before reads
	// degrade to the neutral label.
	DefaultStaleness = 600 * time.Millisecond
)

// Mailbox is the single shared mutable resource between the producer
// (detection pipeline) and consumer (control loop). It holds the most recent
// voted gesture with its write timestamp plus the shared liveness flag.
//
// The producer calls Set after every vote; the consumer calls Get at its own
// cadence. Neither blocks on the other: the lock is held only for the
// duration of one read or write, and the pair {current, writtenAt} is always
// updated as one atomic unit. Intermediate values between two rapid writes
// may be skipped by the consumer; one-shot semantics are edge-triggered off
// the debounced stream, not off every classification.
type Mailbox struct {
	mu        sync.Mutex
	current   gesture.Label
	writtenAt time.Time
	running   bool

	debounce  time.Duration
	staleness time.Duration

	now func() time.Time // overridable in tests
}

// New creates a Mailbox with the given debounce interval and staleness
// window. Non-positive durations fall back to the defaults. The mailbox
// starts neutral and running.
func New(debounce, staleness time.Duration) *Mailbox {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if staleness <= 0 {
		staleness = DefaultStaleness
	}
	return &Mailbox{
		current:   gesture.None,
		running:   true,
		debounce:  debounce,
		staleness: staleness,
		now:       time.Now,
	}
}

// Set publishes a voted label. Writing the neutral label is a no-op: a late
// or misclassified neutral frame must never erase a gesture the consumer has
// not yet read. A non-neutral label overwrites the current value only when it
// differs, or when the previous write is older than the debounce interval.
// A held, unchanging gesture cannot perpetually refresh its own freshness.
func (m *Mailbox) Set(l gesture.Label) {
	if l == gesture.None {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if l != m.current || now.Sub(m.writtenAt) >= m.debounce {
		m.current = l
		m.writtenAt = now
	}
}

// Get returns the current label. A value older than the staleness window
// degrades to neutral, guarding against a stalled producer leaving a gesture
// stuck active. Edge-triggered labels are consumed: the first read returns
// the label and atomically resets it to neutral, so a held gesture fires one
// action per occurrence. Level-triggered labels persist until superseded.
// Get never blocks beyond the mailbox lock.
func (m *Mailbox) Get() gesture.Label {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == gesture.None {
		return gesture.None
	}

	if m.now().Sub(m.writtenAt) > m.staleness {
		m.current = gesture.None
		return gesture.None
	}

	l := m.current
	if l.Trait() == gesture.EdgeTriggered {
		m.current = gesture.None
	}
	return l
}

// Peek returns the current label without consuming it or applying staleness
// side effects. Intended for status surfaces, not for action dispatch.
func (m *Mailbox) Peek() (gesture.Label, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.writtenAt
}

// IsRunning reports the shared liveness flag. Both loops poll it at the top
// of each iteration.
func (m *Mailbox) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// SetRunning sets the shared liveness flag. Safe to call from either side;
// setting it false asks both loops to wind down on their next iteration.
func (m *Mailbox) SetRunning(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = v
}
