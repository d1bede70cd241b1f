package playback

import (
	"time"

	"giftex/internal/config"
)

// idleFPS caps the loop once nothing on screen is changing.
const idleFPS = 20

// spinWindow is the tail of each wait spent busy-waiting instead of sleeping.
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces the render loop to config.GetFPSLimit.
type FPSLimiter struct {
	next time.Time
	now  func() time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{now: time.Now}
}

// Interval returns the frame budget for the current limit, or 0 when the
// loop is unlimited. idle selects the reduced rate used for still images
// and finished animations.
func (f *FPSLimiter) Interval(idle bool) time.Duration {
	limit := config.GetFPSLimit()
	if idle && (limit <= 0 || limit > idleFPS) {
		limit = idleFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame is due. It sleeps for most of the wait
// and spins for the last spinWindow.
func (f *FPSLimiter) Wait(idle bool) {
	target := f.Interval(idle)
	if target == 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// a hitch longer than one frame resyncs instead of bursting to catch up
	if late := f.now().Sub(f.next); late > target {
		f.next = f.now().Add(target)
	}
}
