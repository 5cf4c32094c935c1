package event

import (
	"sync"

	"github.com/katechon/engine/app/metrics"
)

const (
	healthMin     = 0
	healthMax     = 100
	healthNeutral = 50
)

// HealthTracker owns the six pillar health scores. Scores start at the
// neutral value and are only moved through Apply, which clamps the
// result to [0, 100].
type HealthTracker struct {
	mu     sync.RWMutex
	scores map[Pillar]int
}

func NewHealthTracker() *HealthTracker {
	t := &HealthTracker{
		scores: make(map[Pillar]int, len(Pillars())),
	}
	for _, p := range Pillars() {
		t.scores[p] = healthNeutral
		metrics.PillarHealth.WithLabelValues(string(p)).Set(healthNeutral)
	}
	return t
}

// Apply adds a signed delta to one pillar's score, clamped to [0, 100],
// and returns the new score. Unknown pillars are ignored.
func (t *HealthTracker) Apply(pillar Pillar, delta int) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.scores[pillar]
	if !ok {
		return 0
	}

	next := current + delta
	if next < healthMin {
		next = healthMin
	}
	if next > healthMax {
		next = healthMax
	}

	t.scores[pillar] = next
	metrics.PillarHealth.WithLabelValues(string(pillar)).Set(float64(next))

	return next
}

// Get returns the current score for one pillar.
func (t *HealthTracker) Get(pillar Pillar) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scores[pillar]
}

// Snapshot returns a copy of all current scores.
func (t *HealthTracker) Snapshot() map[Pillar]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshot := make(map[Pillar]int, len(t.scores))
	for p, v := range t.scores {
		snapshot[p] = v
	}
	return snapshot
}
