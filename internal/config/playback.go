package config

import "sync"

// PlaybackSettings holds animation playback configuration
type PlaybackSettings struct {
	mu    sync.RWMutex
	speed float64
	loops int // -2 = use the file's loop count
}

// UseFileLoopCount keeps the loop count stored in the animation.
const UseFileLoopCount = -2

var globalPlaybackSettings = &PlaybackSettings{
	speed: 1.0,
	loops: UseFileLoopCount,
}

// GetSpeed returns the playback speed multiplier
func GetSpeed() float64 {
	globalPlaybackSettings.mu.RLock()
	defer globalPlaybackSettings.mu.RUnlock()
	return globalPlaybackSettings.speed
}

// SetSpeed sets the playback speed multiplier, clamped to 0.1..10
func SetSpeed(speed float64) {
	if speed < 0.1 {
		speed = 0.1
	}
	if speed > 10 {
		speed = 10
	}
	globalPlaybackSettings.mu.Lock()
	defer globalPlaybackSettings.mu.Unlock()
	globalPlaybackSettings.speed = speed
}

// GetLoopCount returns the loop count override, or UseFileLoopCount.
// Values follow image/gif: 0 loops forever, -1 plays once, n repeats n times.
func GetLoopCount() int {
	globalPlaybackSettings.mu.RLock()
	defer globalPlaybackSettings.mu.RUnlock()
	return globalPlaybackSettings.loops
}

// SetLoopCount sets the loop count override. Values below -1 restore the
// file's own loop count.
func SetLoopCount(loops int) {
	if loops < -1 {
		loops = UseFileLoopCount
	}
	globalPlaybackSettings.mu.Lock()
	defer globalPlaybackSettings.mu.Unlock()
	globalPlaybackSettings.loops = loops
}
