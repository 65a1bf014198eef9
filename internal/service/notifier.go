package service

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/NoroffFEU/online-shop/internal/query"
)

// NotifyFunc receives the unmatched search term once the debounce
// delay has elapsed.
type NotifyFunc func(term string)

// NoMatchesNotifier turns "this term matched nothing" observations into
// at most one notification per unmatched term. Every qualifying
// observation restarts a cancellable timer; the notification only goes
// out if the timer survives the full delay, and never repeats for the
// same term until the term or the result set changes.
type NoMatchesNotifier struct {
	mu       sync.Mutex
	delay    time.Duration
	notify   NotifyFunc
	timer    *time.Timer
	pending  string
	notified string
	stopped  bool
}

func NewNoMatchesNotifier(delay time.Duration, notify NotifyFunc) *NoMatchesNotifier {
	return &NoMatchesNotifier{
		delay:  delay,
		notify: notify,
	}
}

// Observe reports the outcome of one pipeline run. noMatches must be
// the run's NoMatches signal for term.
func (n *NoMatchesNotifier) Observe(term string, noMatches bool) {
	term = strings.TrimSpace(term)

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stopped {
		return
	}

	n.cancelLocked()

	if !noMatches || utf8.RuneCountInString(term) < query.MinSuggestTermLen {
		// Term or result set changed away; the next unmatched term may
		// notify again.
		n.notified = ""
		return
	}
	if term == n.notified {
		return
	}

	n.pending = term
	n.timer = time.AfterFunc(n.delay, func() { n.fire(term) })
}

func (n *NoMatchesNotifier) fire(term string) {
	n.mu.Lock()
	if n.stopped || n.pending != term {
		n.mu.Unlock()
		return
	}
	n.pending = ""
	n.timer = nil
	n.notified = term
	n.mu.Unlock()

	n.notify(term)
}

func (n *NoMatchesNotifier) cancelLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.pending = ""
}

// Stop cancels any pending notification. Used on session teardown.
func (n *NoMatchesNotifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelLocked()
	n.stopped = true
}
