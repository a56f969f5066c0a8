package clock

import (
	"sync"
	"time"
)

// Clock provides the current time for timestamps and "now" formatting.
type Clock interface {
	Now() time.Time
}

// System uses the system time.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant until it is moved with Set or Add.
type Fixed struct {
	mu sync.RWMutex
	t  time.Time
}

// NewFixed returns a Clock frozen at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

func (f *Fixed) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.t
}

func (f *Fixed) Set(t time.Time) {
	f.mu.Lock()
	f.t = t
	f.mu.Unlock()
}

func (f *Fixed) Add(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

// New returns the system clock; wire uses it as the Clock provider.
func New() Clock {
	return System{}
}
