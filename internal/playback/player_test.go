package playback

import (
	"testing"
	"time"

	"giftex/internal/config"
)

type fakeSeq struct {
	delays   []time.Duration
	index    int
	advances int
}

func (s *fakeSeq) FrameCount() int           { return len(s.delays) }
func (s *fakeSeq) Index() int                { return s.index }
func (s *fakeSeq) Delay(i int) time.Duration { return s.delays[i] }

func (s *fakeSeq) Advance() {
	s.index = (s.index + 1) % len(s.delays)
	s.advances++
}

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestTickFollowsDelays(t *testing.T) {
	seq := &fakeSeq{delays: []time.Duration{ms(100), ms(50), ms(200)}}
	p := NewPlayer(seq, 0, 1)

	if p.Tick(t0) {
		t.Fatalf("first Tick should only start the clock")
	}
	steps := []struct {
		at      int
		changed bool
		index   int
	}{
		{99, false, 0},
		{100, true, 1},
		{149, false, 1},
		{150, true, 2},
		{350, true, 0},
	}
	for _, s := range steps {
		got := p.Tick(t0.Add(ms(s.at)))
		if got != s.changed || seq.index != s.index {
			t.Errorf("t=%dms: changed=%v index=%d, want %v %d", s.at, got, seq.index, s.changed, s.index)
		}
	}
}

func TestTickCatchesUpSeveralFrames(t *testing.T) {
	seq := &fakeSeq{delays: []time.Duration{ms(10), ms(10), ms(10), ms(10)}}
	p := NewPlayer(seq, 0, 1)
	p.Tick(t0)

	if !p.Tick(t0.Add(ms(25))) {
		t.Fatalf("expected a frame change")
	}
	if seq.index != 2 {
		t.Errorf("index = %d, want 2", seq.index)
	}
}

func TestTickResyncsAfterStall(t *testing.T) {
	seq := &fakeSeq{delays: []time.Duration{ms(10), ms(10), ms(10)}}
	p := NewPlayer(seq, 0, 1)
	p.Tick(t0)

	p.Tick(t0.Add(time.Hour))
	if seq.advances != 3 {
		t.Errorf("advances = %d, want one cycle (3)", seq.advances)
	}
	if p.Tick(t0.Add(time.Hour + ms(5))) {
		t.Errorf("clock did not restart after stall")
	}
}

func TestLoopCount(t *testing.T) {
	tests := []struct {
		loops int
		plays int // full cycles shown before stopping, 0 = forever
	}{
		{-1, 1},
		{1, 2},
		{3, 4},
		{0, 0},
	}
	for _, tt := range tests {
		seq := &fakeSeq{delays: []time.Duration{ms(10), ms(10)}}
		p := NewPlayer(seq, tt.loops, 1)
		p.Tick(t0)
		for i := 1; i <= 100; i++ {
			p.Tick(t0.Add(ms(10 * i)))
		}
		if tt.plays == 0 {
			if p.Done() || seq.advances != 100 {
				t.Errorf("loops=0: done=%v advances=%d", p.Done(), seq.advances)
			}
			continue
		}
		if !p.Done() {
			t.Errorf("loops=%d: not done", tt.loops)
		}
		if want := 2*tt.plays - 1; seq.advances != want {
			t.Errorf("loops=%d: advances=%d, want %d", tt.loops, seq.advances, want)
		}
		if seq.index != 1 {
			t.Errorf("loops=%d: stopped on frame %d, want last", tt.loops, seq.index)
		}
	}
}

func TestSpeed(t *testing.T) {
	seq := &fakeSeq{delays: []time.Duration{ms(100), ms(100)}}
	p := NewPlayer(seq, 0, 2)
	p.Tick(t0)
	if !p.Tick(t0.Add(ms(50))) {
		t.Errorf("double speed should advance after 50ms")
	}
}

func TestSingleFrameNeverAdvances(t *testing.T) {
	seq := &fakeSeq{delays: []time.Duration{ms(10)}}
	p := NewPlayer(seq, 0, 1)
	p.Tick(t0)
	if p.Tick(t0.Add(time.Second)) || seq.advances != 0 {
		t.Errorf("single frame advanced")
	}
}

func TestFPSLimiterInterval(t *testing.T) {
	defer config.SetFPSLimit(config.GetFPSLimit())

	f := NewFPSLimiter()
	config.SetFPSLimit(100)
	if got := f.Interval(false); got != ms(10) {
		t.Errorf("Interval(100fps) = %v", got)
	}
	if got := f.Interval(true); got != ms(50) {
		t.Errorf("idle Interval = %v, want 50ms", got)
	}

	config.SetFPSLimit(0)
	if got := f.Interval(false); got != 0 {
		t.Errorf("unlimited Interval = %v", got)
	}
	f.Wait(false)
	if !f.next.IsZero() {
		t.Errorf("unlimited Wait scheduled a frame")
	}
}

func TestFPSLimiterWaitsUntilDue(t *testing.T) {
	defer config.SetFPSLimit(config.GetFPSLimit())
	config.SetFPSLimit(200)

	f := NewFPSLimiter()
	start := time.Now()
	f.Wait(false)
	f.Wait(false)
	if elapsed := time.Since(start); elapsed < ms(10) {
		t.Errorf("two frames at 200fps took %v, want >= 10ms", elapsed)
	}
}

func TestReset(t *testing.T) {
	seq := &fakeSeq{delays: []time.Duration{ms(10), ms(10)}}
	p := NewPlayer(seq, -1, 1)
	p.Tick(t0)
	p.Tick(t0.Add(ms(10)))
	p.Tick(t0.Add(ms(20)))
	if !p.Done() {
		t.Fatalf("single play not done")
	}

	p.Reset(false)
	if !p.Done() {
		t.Errorf("Reset without rewind cleared Done")
	}
	p.Reset(true)
	seq.index = 0
	if p.Done() {
		t.Errorf("rewind kept Done")
	}
	if p.Tick(t0.Add(time.Hour)) {
		t.Errorf("first Tick after Reset advanced")
	}
	if !p.Tick(t0.Add(time.Hour + ms(10))) {
		t.Errorf("Tick after Reset did not advance")
	}
}
