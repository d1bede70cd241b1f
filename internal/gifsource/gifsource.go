// Package gifsource decodes an animated GIF and keeps the currently active
// frame composited into an RGBA canvas that can be uploaded to a texture.
package gifsource

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"log"
	"os"
	"time"

	"giftex/internal/graphics/gpu"

	"golang.org/x/image/draw"
)

// ErrNoFrames is returned for a GIF stream without images.
var ErrNoFrames = errors.New("gifsource: no frames")

// Delays at or below this many hundredths of a second are treated as
// defaultDelay, matching common browser behavior.
const (
	minDelay     = 1
	defaultDelay = 10
)

// Source is an animated GIF positioned on one frame. It is not safe for
// concurrent use.
type Source struct {
	width     int
	height    int
	frames    []*image.Paletted
	delays    []int
	disposal  []byte
	loopCount int

	canvas   *image.RGBA
	snapshot []byte
	index    int
}

// Open decodes the GIF file at path.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gif: %w", err)
	}
	defer f.Close()

	s, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %s: %d frames, %dx%d, loop count %d", path, s.FrameCount(), s.width, s.height, s.loopCount)
	return s, nil
}

// Decode reads every frame of a GIF stream and positions the source on the
// first frame.
func Decode(r io.Reader) (*Source, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode gif: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, ErrNoFrames
	}

	width, height := g.Config.Width, g.Config.Height
	if width <= 0 || height <= 0 {
		var b image.Rectangle
		for _, frame := range g.Image {
			b = b.Union(frame.Bounds())
		}
		width, height = b.Max.X, b.Max.Y
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gifsource: invalid logical screen %dx%d", width, height)
	}

	disposal := g.Disposal
	if len(disposal) != len(g.Image) {
		disposal = make([]byte, len(g.Image))
	}
	delays := g.Delay
	if len(delays) != len(g.Image) {
		delays = make([]int, len(g.Image))
	}

	s := &Source{
		width:     width,
		height:    height,
		frames:    g.Image,
		delays:    delays,
		disposal:  disposal,
		loopCount: g.LoopCount,
		canvas:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	s.reset()
	s.step()
	return s, nil
}

// Width returns the logical screen width.
func (s *Source) Width() int { return s.width }

// Height returns the logical screen height.
func (s *Source) Height() int { return s.height }

// FrameCount returns the number of frames, or 0 after Release.
func (s *Source) FrameCount() int { return len(s.frames) }

// Index returns the frame currently composited into the canvas.
func (s *Source) Index() int { return s.index }

// LoopCount follows image/gif: 0 loops forever, -1 plays once and n > 0
// repeats n extra times.
func (s *Source) LoopCount() int { return s.loopCount }

// Delay returns how long frame i stays on screen.
func (s *Source) Delay(i int) time.Duration {
	if i < 0 || i >= len(s.delays) {
		return 0
	}
	d := s.delays[i]
	if d <= minDelay {
		d = defaultDelay
	}
	return time.Duration(d) * 10 * time.Millisecond
}

// Canvas returns the composited current frame. The image is reused by the
// next Seek or Advance.
func (s *Source) Canvas() *image.RGBA { return s.canvas }

// Advance composites the next frame, wrapping to the first after the last.
func (s *Source) Advance() {
	if len(s.frames) == 0 {
		return
	}
	if s.index == len(s.frames)-1 {
		s.reset()
	}
	s.step()
}

// Seek composites frame i from the start of the animation. Out-of-range
// indexes are ignored.
func (s *Source) Seek(i int) {
	if i < 0 || i >= len(s.frames) || i == s.index {
		return
	}
	if i < s.index {
		s.reset()
	}
	for s.index < i {
		s.step()
	}
}

// UpdateTexture copies the canvas into the bound texture at target and level.
func (s *Source) UpdateTexture(ctx gpu.Context, target uint32, level int32) {
	if s.canvas == nil {
		return
	}
	ctx.TexSubImage2D(target, level, 0, 0, int32(s.width), int32(s.height), gpu.RGBA, gpu.UnsignedByte, s.canvas.Pix)
}

// Release drops the decoded frames and the canvas. Later calls to Advance,
// Seek and UpdateTexture do nothing.
func (s *Source) Release() {
	s.frames = nil
	s.delays = nil
	s.disposal = nil
	s.canvas = nil
	s.snapshot = nil
	s.index = -1
}

func (s *Source) reset() {
	clear(s.canvas.Pix)
	s.index = -1
}

// step disposes of the current frame and draws the next one over the canvas.
func (s *Source) step() {
	if s.index >= 0 {
		s.dispose(s.index)
	}
	s.index++
	frame := s.frames[s.index]
	if s.disposal[s.index] == gif.DisposalPrevious {
		s.snapshot = append(s.snapshot[:0], s.canvas.Pix...)
	}
	draw.Draw(s.canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
}

func (s *Source) dispose(i int) {
	switch s.disposal[i] {
	case gif.DisposalBackground:
		draw.Draw(s.canvas, s.frames[i].Bounds(), image.Transparent, image.Point{}, draw.Src)
	case gif.DisposalPrevious:
		if len(s.snapshot) == len(s.canvas.Pix) {
			copy(s.canvas.Pix, s.snapshot)
		}
	}
}
