// Package progress streams phase updates from the scan and delete engines
// to interested listeners (normally the CLI).
package progress

import (
	"sync"
	"time"
)

// Phase represents the current phase of operation
type Phase string

const (
	PhaseDiscovering Phase = "discovering"
	PhaseSizing      Phase = "sizing"
	PhaseDeleting    Phase = "deleting"
	PhaseComplete    Phase = "complete"
)

// Update is one progress event.
type Update struct {
	Phase      Phase
	Category   string
	ItemsFound int
	ItemsDone  int
	ItemsTotal int
	StartTime  time.Time
}

// Reporter provides thread-safe progress reporting. Publishing never
// blocks; slow listeners drop updates.
type Reporter struct {
	mu        sync.Mutex
	listeners []chan Update
	closed    bool
}

// NewReporter creates a new Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Subscribe returns a channel that receives progress updates.
func (r *Reporter) Subscribe() <-chan Update {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan Update, 64)
	r.listeners = append(r.listeners, ch)
	return ch
}

// Publish delivers an update to every listener without blocking.
func (r *Reporter) Publish(u Update) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	for _, ch := range r.listeners {
		select {
		case ch <- u:
		default:
		}
	}
}

// Close closes all listener channels. Publish becomes a no-op afterwards.
func (r *Reporter) Close() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for _, ch := range r.listeners {
		close(ch)
	}
	r.listeners = nil
}
