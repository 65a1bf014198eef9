package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifyRecorder struct {
	mu    sync.Mutex
	terms []string
}

func (r *notifyRecorder) record(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = append(r.terms, term)
}

func (r *notifyRecorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.terms...)
}

func TestNotifier_FiresOncePerUnmatchedTerm(t *testing.T) {
	rec := &notifyRecorder{}
	n := NewNoMatchesNotifier(10*time.Millisecond, rec.record)
	defer n.Stop()

	n.Observe("abc", true)
	time.Sleep(30 * time.Millisecond)

	// Re-running the same unmatched query must not notify again.
	n.Observe("abc", true)
	time.Sleep(30 * time.Millisecond)

	require.Equal(t, []string{"abc"}, rec.calls())
}

func TestNotifier_ShortTermsNeverFire(t *testing.T) {
	rec := &notifyRecorder{}
	n := NewNoMatchesNotifier(10*time.Millisecond, rec.record)
	defer n.Stop()

	n.Observe("a", true)
	n.Observe(" ", true)
	time.Sleep(30 * time.Millisecond)

	assert.Empty(t, rec.calls())
}

func TestNotifier_InputChangeRestartsTimer(t *testing.T) {
	rec := &notifyRecorder{}
	n := NewNoMatchesNotifier(40*time.Millisecond, rec.record)
	defer n.Stop()

	// Typing: each keystroke lands before the delay elapses.
	n.Observe("ab", true)
	time.Sleep(10 * time.Millisecond)
	n.Observe("abc", true)
	time.Sleep(10 * time.Millisecond)
	n.Observe("abcd", true)

	time.Sleep(70 * time.Millisecond)
	require.Equal(t, []string{"abcd"}, rec.calls())
}

func TestNotifier_MatchResetsOneShot(t *testing.T) {
	rec := &notifyRecorder{}
	n := NewNoMatchesNotifier(10*time.Millisecond, rec.record)
	defer n.Stop()

	n.Observe("abc", true)
	time.Sleep(30 * time.Millisecond)

	// The result set changed (matches appeared), then the same term
	// stops matching again: a second notification is due.
	n.Observe("abc", false)
	n.Observe("abc", true)
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, []string{"abc", "abc"}, rec.calls())
}

func TestNotifier_StopCancelsPending(t *testing.T) {
	rec := &notifyRecorder{}
	n := NewNoMatchesNotifier(20*time.Millisecond, rec.record)

	n.Observe("abc", true)
	n.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.calls())
}
