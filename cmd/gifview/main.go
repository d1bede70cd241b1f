// Command gifview plays an animated GIF in a window as a textured quad.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"giftex/internal/config"
	"giftex/internal/gifsource"
	"giftex/internal/graphics/renderables/gifquad"
	"giftex/internal/graphics/renderer"
	"giftex/internal/playback"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.gif\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	source, err := gifsource.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw: %v", err)
	}
	defer glfw.Terminate()

	window, ctx, err := setupWindow()
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	log.Printf("GL: %s", ctx.Version())

	drawer, err := gifquad.NewDrawer(ctx, source)
	if err != nil {
		log.Fatal(err)
	}
	drawer.ReleaseGPU = config.GetReleaseGPUOnDestroy()

	r, err := renderer.NewRenderer(ctx, drawer)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Dispose()

	loops := config.GetLoopCount()
	if loops == config.UseFileLoopCount {
		loops = source.LoopCount()
	}
	player := playback.NewPlayer(source, loops, config.GetSpeed())

	v := newViewer(window, r, source, player)
	v.Run()
}
