package main

import (
	"giftex/internal/config"
	"giftex/internal/graphics/gpu/gles"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow() (*glfw.Window, *gles.Context, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, config.GetTitle(), nil, nil)
	if err != nil {
		return nil, nil, err
	}
	window.MakeContextCurrent()

	// Initialize GL ES bindings for the context just made current
	ctx, err := gles.Init()
	if err != nil {
		window.Destroy()
		return nil, nil, err
	}

	glfw.SwapInterval(config.GetSwapInterval())

	return window, ctx, nil
}
