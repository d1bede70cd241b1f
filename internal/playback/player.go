// Package playback advances an animation according to its frame delays.
package playback

import (
	"time"

	"giftex/internal/profiling"
)

// Sequence is an animation that can step through its frames.
type Sequence interface {
	FrameCount() int
	Index() int
	Delay(i int) time.Duration
	Advance()
}

// Player decides when the sequence moves to its next frame. It is driven by
// Tick from the render loop and never sleeps.
type Player struct {
	seq   Sequence
	loops int
	speed float64

	next  time.Time
	plays int
	done  bool
}

// NewPlayer creates a player. loops follows image/gif: 0 repeats forever,
// -1 plays once and n > 0 plays n+1 times. speed multiplies the playback
// rate and must be positive.
func NewPlayer(seq Sequence, loops int, speed float64) *Player {
	if speed <= 0 {
		speed = 1
	}
	return &Player{seq: seq, loops: loops, speed: speed}
}

// Done reports whether the loop count has run out.
func (p *Player) Done() bool { return p.done }

// Reset restarts the clock on the next Tick, so time spent paused is not
// played back. When rewind is set the loop count starts over as well.
func (p *Player) Reset(rewind bool) {
	p.next = time.Time{}
	if rewind {
		p.plays = 0
		p.done = false
	}
}

// Tick advances the sequence for every frame whose delay has elapsed by now
// and reports whether the current frame changed. The first call only starts
// the clock. After a stall longer than one full cycle the clock restarts
// from now instead of replaying the missed frames.
func (p *Player) Tick(now time.Time) bool {
	n := p.seq.FrameCount()
	if p.done || n <= 1 {
		return false
	}
	if p.next.IsZero() {
		p.next = now.Add(p.delay(p.seq.Index()))
		return false
	}

	defer profiling.Track("playback.Tick")()
	changed := false
	for steps := 0; !now.Before(p.next); steps++ {
		if steps == n {
			p.next = now.Add(p.delay(p.seq.Index()))
			break
		}
		if p.seq.Index() == n-1 {
			p.plays++
			if p.finished() {
				p.done = true
				break
			}
		}
		p.seq.Advance()
		p.next = p.next.Add(p.delay(p.seq.Index()))
		changed = true
	}
	return changed
}

func (p *Player) finished() bool {
	switch {
	case p.loops == 0:
		return false
	case p.loops < 0:
		return p.plays >= 1
	default:
		return p.plays >= p.loops+1
	}
}

func (p *Player) delay(i int) time.Duration {
	d := time.Duration(float64(p.seq.Delay(i)) / p.speed)
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}
