package internal

import (
	"math"
	"sync"
	"time"
)

const DefaultLoadingDelay = 1800 * time.Millisecond

// Preloader flips a loading flag once after a fixed delay.
type Preloader struct {
	mu       sync.Mutex
	loading  bool
	started  time.Time
	finished time.Time
	timer    *time.Timer
	onDone   func()
}

// StartPreloader arms the timer. onDone may be nil; it runs on the timer
// goroutine after the flag is cleared.
func StartPreloader(delay time.Duration, onDone func()) *Preloader {
	p := &Preloader{
		loading: true,
		started: time.Now(),
		onDone:  onDone,
	}
	p.mu.Lock()
	p.timer = time.AfterFunc(delay, p.finish)
	p.mu.Unlock()
	return p
}

func (p *Preloader) finish() {
	p.mu.Lock()
	if !p.loading {
		p.mu.Unlock()
		return
	}
	p.loading = false
	p.finished = time.Now()
	done := p.onDone
	p.mu.Unlock()

	if done != nil {
		done()
	}
}

func (p *Preloader) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// SinceStart is how long the overlay has been up.
func (p *Preloader) SinceStart() time.Duration {
	return time.Since(p.started)
}

// SinceDone is how long ago loading finished, or 0 while still loading.
func (p *Preloader) SinceDone() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loading {
		return 0
	}
	return time.Since(p.finished)
}

// Stop cancels a pending timer. The flag is left untouched so a stopped
// preloader never reports completion it did not reach.
func (p *Preloader) Stop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer == nil {
		return false
	}
	stopped := p.timer.Stop()
	p.timer = nil
	return stopped
}

// SpinnerAngle returns the rotation in radians of the loading mark: one eased
// turn per period.
func SpinnerAngle(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	t := float64(elapsed%period) / float64(period)
	return easeInOut(t) * 2 * math.Pi
}

// FadeIn returns an opacity in [0, 1] that ramps up over duration after delay.
func FadeIn(elapsed, delay, duration time.Duration) float64 {
	if elapsed <= delay {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	v := float64(elapsed-delay) / float64(duration)
	if v > 1 {
		return 1
	}
	return v
}

func easeInOut(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}
