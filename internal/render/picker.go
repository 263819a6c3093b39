package render

import (
	"math/rand"
	"sync"
	"time"
)

// Picker selects editorial phrases from a pool. The randomness source is
// injected so tests can seed it for deterministic output; selections are
// never persisted, so repeated renders of the same record may differ.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker returns a picker seeded from the wall clock.
func NewPicker() *Picker {
	return NewPickerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewPickerWithSource returns a picker over the given source.
func NewPickerWithSource(src rand.Source) *Picker {
	return &Picker{rng: rand.New(src)}
}

// Pick returns a uniformly random element of pool.
func (p *Picker) Pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return pool[p.rng.Intn(len(pool))]
}
