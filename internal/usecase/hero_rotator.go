package usecase

import (
	"sync"
	"time"
)

// DefaultRotationInterval matches the public hero carousel cadence.
const DefaultRotationInterval = 5 * time.Second

// HeroRotator advances the hero carousel index on a fixed interval. It only
// ticks while more than one image exists; SetCount restarts the cycle
// whenever the set size changes, so a freshly added image gets a full
// interval before the next advance.
type HeroRotator struct {
	interval time.Duration

	mu    sync.Mutex
	count int
	index int
	stop  chan struct{}
	done  chan struct{}
}

func NewHeroRotator(interval time.Duration) *HeroRotator {
	if interval <= 0 {
		interval = DefaultRotationInterval
	}
	return &HeroRotator{interval: interval}
}

// Index returns the current rotation position. Always 0 while fewer than two
// images exist.
func (r *HeroRotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// SetCount tells the rotator how many images the carousel currently holds.
// A changed count resets the index and restarts the ticker.
func (r *HeroRotator) SetCount(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if count == r.count {
		return
	}
	r.count = count
	r.index = 0

	r.stopLocked()
	if count > 1 {
		r.startLocked()
	}
}

// Stop tears the ticker down. Safe to call repeatedly.
func (r *HeroRotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
	r.count = 0
	r.index = 0
}

func (r *HeroRotator) startLocked() {
	stop := make(chan struct{})
	done := make(chan struct{})
	r.stop = stop
	r.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				r.advance()
			}
		}
	}()
}

func (r *HeroRotator) stopLocked() {
	if r.stop == nil {
		return
	}
	close(r.stop)
	r.stop = nil
	r.done = nil
}

func (r *HeroRotator) advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count > 1 {
		r.index = (r.index + 1) % r.count
	}
}
