package config

import (
	"flag"
	"io"
	"testing"
	"time"
)

func TestSettersClamp(t *testing.T) {
	SetWindowSize(10, 100000)
	if w, h := GetWindowSize(); w != 64 || h != 8192 {
		t.Errorf("window size = %dx%d, want 64x8192", w, h)
	}

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("fps limit = %d, want 0", got)
	}
	SetFPSLimit(5)
	if got := GetFPSLimit(); got != 10 {
		t.Errorf("fps limit = %d, want 10", got)
	}

	SetSlowFrameThreshold(0)
	if got := GetSlowFrameThreshold(); got != time.Millisecond {
		t.Errorf("slow threshold = %v, want 1ms", got)
	}

	SetClearColor(-1, 0.5, 2, 1)
	if got := GetClearColor(); got != [4]float32{0, 0.5, 1, 1} {
		t.Errorf("clear color = %v", got)
	}

	SetSpeed(100)
	if got := GetSpeed(); got != 10 {
		t.Errorf("speed = %v, want 10", got)
	}

	SetLoopCount(-7)
	if got := GetLoopCount(); got != UseFileLoopCount {
		t.Errorf("loops = %d, want %d", got, UseFileLoopCount)
	}
}

func TestBindParsesFlags(t *testing.T) {
	fs := flag.NewFlagSet("gifview", flag.ContinueOnError)
	Bind(fs)

	args := []string{
		"-width", "320", "-height", "240",
		"-title", "demo",
		"-swap", "0",
		"-fps", "60",
		"-slow", "40ms",
		"-keep-gpu",
		"-speed", "2",
		"-loops", "3",
		"anim.gif",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if w, h := GetWindowSize(); w != 320 || h != 240 {
		t.Errorf("window size = %dx%d", w, h)
	}
	if got := GetTitle(); got != "demo" {
		t.Errorf("title = %q", got)
	}
	if got := GetSwapInterval(); got != 0 {
		t.Errorf("swap = %d", got)
	}
	if got := GetFPSLimit(); got != 60 {
		t.Errorf("fps = %d", got)
	}
	if got := GetSlowFrameThreshold(); got != 40*time.Millisecond {
		t.Errorf("slow = %v", got)
	}
	if GetReleaseGPUOnDestroy() {
		t.Errorf("release on destroy should be off with -keep-gpu")
	}
	if got := GetSpeed(); got != 2 {
		t.Errorf("speed = %v", got)
	}
	if got := GetLoopCount(); got != 3 {
		t.Errorf("loops = %d", got)
	}
	if fs.NArg() != 1 || fs.Arg(0) != "anim.gif" {
		t.Errorf("args = %v", fs.Args())
	}

	SetReleaseGPUOnDestroy(true)
}

func TestBindRejectsBadNumber(t *testing.T) {
	fs := flag.NewFlagSet("gifview", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	Bind(fs)
	if err := fs.Parse([]string{"-fps", "fast"}); err == nil {
		t.Fatalf("expected parse error")
	}
}
