package session

import (
	"sync"
	"time"
)

// defaultDebounce is how long input must stay quiet before a scheduled
// function fires.
const defaultDebounce = 200 * time.Millisecond

// Debouncer coalesces rapid calls: each Schedule resets the timer, so only
// the last scheduled function runs once input settles.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer. A zero delay uses the 200ms default.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = defaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Schedule runs fn after the delay, cancelling any pending run.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops any pending run.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
