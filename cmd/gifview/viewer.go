package main

import (
	"log"
	"time"

	"giftex/internal/config"
	"giftex/internal/gifsource"
	"giftex/internal/graphics/renderer"
	"giftex/internal/input"
	"giftex/internal/playback"
	"giftex/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type viewer struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	source   *gifsource.Source
	player   *playback.Player
	input    *input.InputManager
	limiter  *playback.FPSLimiter
	paused   bool
}

func newViewer(window *glfw.Window, r *renderer.Renderer, source *gifsource.Source, player *playback.Player) *viewer {
	v := &viewer{
		window:   window,
		renderer: r,
		source:   source,
		player:   player,
		input:    input.NewInputManager(),
		limiter:  playback.NewFPSLimiter(),
	}

	// The framebuffer may be larger than the window on HiDPI displays
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		r.UpdateViewport(fbWidth, fbHeight)
	})
	v.input.SetKeyCallback(window)

	fbWidth, fbHeight := window.GetFramebufferSize()
	r.UpdateViewport(fbWidth, fbHeight)
	return v
}

func (v *viewer) Run() {
	for !v.window.ShouldClose() {
		v.tick()
	}
}

func (v *viewer) tick() {
	profiling.ResetFrame()
	start := time.Now()

	glfw.PollEvents()
	v.handleInput()

	if !v.paused {
		v.player.Tick(start)
	}
	v.renderer.Render()
	v.window.SwapBuffers()

	if d := time.Since(start); d > config.GetSlowFrameThreshold() {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	v.input.PostUpdate()
	idle := v.paused || v.player.Done() || v.source.FrameCount() <= 1
	v.limiter.Wait(idle)
}

func (v *viewer) handleInput() {
	if v.input.JustPressed(input.ActionQuit) {
		v.window.SetShouldClose(true)
	}
	if v.input.JustPressed(input.ActionTogglePause) {
		v.paused = !v.paused
		if !v.paused {
			v.player.Reset(false)
		}
	}
	if v.paused && v.input.JustPressed(input.ActionStepFrame) {
		v.source.Advance()
	}
	if v.input.JustPressed(input.ActionRestart) {
		v.source.Seek(0)
		v.player.Reset(true)
	}
}
