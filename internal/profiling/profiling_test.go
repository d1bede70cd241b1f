package profiling

import (
	"testing"
	"time"
)

func TestTopNOrdersByDuration(t *testing.T) {
	ResetFrame()
	Add("gifquad.Draw", 4200*time.Microsecond)
	Add("gifsource.Advance", 300*time.Microsecond)
	Add("renderer.Render", 2*time.Millisecond)
	Add("gifquad.Draw", 0)

	got := TopN(2)
	want := "gifquad.Draw:4.2ms, renderer.Render:2ms"
	if got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
	if c := Count("gifquad.Draw"); c != 2 {
		t.Errorf("Count = %d, want 2", c)
	}
}

func TestTopNMoreThanRecorded(t *testing.T) {
	ResetFrame()
	Add("b", time.Millisecond)
	Add("a", time.Millisecond)

	if got, want := TopN(10), "a:1ms, b:1ms"; got != want {
		t.Errorf("TopN(10) = %q, want %q", got, want)
	}
}

func TestResetFrame(t *testing.T) {
	Add("x", time.Millisecond)
	ResetFrame()
	if got := TopN(5); got != "" {
		t.Errorf("TopN after reset = %q, want empty", got)
	}
	if c := Count("x"); c != 0 {
		t.Errorf("Count after reset = %d", c)
	}
}

func TestTrackRecords(t *testing.T) {
	ResetFrame()
	stop := Track("section")
	stop()
	if _, ok := Snapshot()["section"]; !ok {
		t.Fatalf("Track did not record section")
	}
}
