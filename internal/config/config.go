package config

import (
	"flag"
	"strconv"
	"sync"
	"time"
)

// ViewerSettings holds window and render-loop configuration
type ViewerSettings struct {
	mu            sync.RWMutex
	width         int
	height        int
	title         string
	swapInterval  int
	fpsLimit      int // 0 = unlimited
	slowFrame     time.Duration
	clearColor    [4]float32
	releaseOnExit bool
}

var globalViewerSettings = &ViewerSettings{
	width:         900,
	height:        600,
	title:         "gifview",
	swapInterval:  1,
	fpsLimit:      120,
	slowFrame:     16 * time.Millisecond,
	clearColor:    [4]float32{0, 0, 0, 1},
	releaseOnExit: true,
}

// GetWindowSize returns the initial window size in screen coordinates
func GetWindowSize() (int, int) {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.width, globalViewerSettings.height
}

// SetWindowSize sets the initial window size, clamped to 64..8192 per axis
func SetWindowSize(width, height int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.width = clampInt(width, 64, 8192)
	globalViewerSettings.height = clampInt(height, 64, 8192)
}

// GetTitle returns the window title
func GetTitle() string {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.title
}

// SetTitle sets the window title. An empty title is ignored.
func SetTitle(title string) {
	if title == "" {
		return
	}
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.title = title
}

// GetSwapInterval returns the buffer swap interval (0 disables V-Sync)
func GetSwapInterval() int {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.swapInterval
}

// SetSwapInterval sets the swap interval, clamped to 0..4
func SetSwapInterval(interval int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.swapInterval = clampInt(interval, 0, 4)
}

// GetFPSLimit returns the render loop cap; 0 means unlimited
func GetFPSLimit() int {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.fpsLimit
}

// SetFPSLimit sets the render loop cap. Negative values mean unlimited,
// positive values are clamped to 10..1000.
func SetFPSLimit(limit int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	if limit <= 0 {
		globalViewerSettings.fpsLimit = 0
		return
	}
	globalViewerSettings.fpsLimit = clampInt(limit, 10, 1000)
}

// GetSlowFrameThreshold returns the frame time above which a frame is logged
func GetSlowFrameThreshold() time.Duration {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.slowFrame
}

// SetSlowFrameThreshold sets the slow-frame threshold, at least 1ms
func SetSlowFrameThreshold(d time.Duration) {
	if d < time.Millisecond {
		d = time.Millisecond
	}
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.slowFrame = d
}

// GetClearColor returns the RGBA color painted behind the quad
func GetClearColor() [4]float32 {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.clearColor
}

// SetClearColor sets the clear color; each channel is clamped to 0..1
func SetClearColor(r, g, b, a float32) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.clearColor = [4]float32{
		clampFloat(r), clampFloat(g), clampFloat(b), clampFloat(a),
	}
}

// GetReleaseGPUOnDestroy reports whether renderables free their GL objects
// when destroyed
func GetReleaseGPUOnDestroy() bool {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.releaseOnExit
}

// SetReleaseGPUOnDestroy sets whether renderables free their GL objects
func SetReleaseGPUOnDestroy(release bool) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()
	globalViewerSettings.releaseOnExit = release
}

// Bind registers every setting on fs. Parsed values go through the setters,
// so they are clamped the same way.
func Bind(fs *flag.FlagSet) {
	w, h := GetWindowSize()
	fs.Func("width", "initial window width (default "+strconv.Itoa(w)+")", func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		_, h := GetWindowSize()
		SetWindowSize(v, h)
		return nil
	})
	fs.Func("height", "initial window height (default "+strconv.Itoa(h)+")", func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		w, _ := GetWindowSize()
		SetWindowSize(w, v)
		return nil
	})
	fs.Func("title", "window title (default "+GetTitle()+")", func(s string) error {
		SetTitle(s)
		return nil
	})
	fs.Func("swap", "swap interval, 0 disables V-Sync", func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		SetSwapInterval(v)
		return nil
	})
	fs.Func("fps", "frame rate cap, 0 for unlimited", func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		SetFPSLimit(v)
		return nil
	})
	fs.Func("slow", "log frames slower than this duration", func(s string) error {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		SetSlowFrameThreshold(d)
		return nil
	})
	fs.BoolFunc("keep-gpu", "do not delete GL objects on shutdown", func(s string) error {
		keep, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		SetReleaseGPUOnDestroy(!keep)
		return nil
	})
	fs.Func("speed", "playback speed multiplier", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		SetSpeed(v)
		return nil
	})
	fs.Func("loops", "loop count override: 0 forever, -1 once, n extra repeats", func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		SetLoopCount(v)
		return nil
	})
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
