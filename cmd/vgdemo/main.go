// Command vgdemo opens an SDL2 window and presents a vg.Surface each frame.
// It is the only place in the module that touches a display server; the
// rendering core itself never imports go-sdl2. Uses go-sdl2's backend
// conventions (CreateWindow/CreateRenderer/CreateTexture,
// TEXTUREACCESS_STREAMING + texture.Update, PollEvent loop), collapsed from
// a full PlatformBackend abstraction down to a single main
// since this command has exactly one caller and one pixel format.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	vg "github.com/agg-go/vgcanvas"
)

func main() {
	width := flag.Int("width", 640, "window width")
	height := flag.Int("height", 480, "window height")
	flag.Parse()

	if err := run(*width, *height); err != nil {
		fmt.Fprintln(os.Stderr, "vgdemo:", err)
		os.Exit(1)
	}
}

func run(width, height int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"vgdemo",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
	}
	defer renderer.Destroy()

	// vg.Surface stores premultiplied BGRA bytes; SDL's
	// PIXELFORMAT_ARGB32 is host-endian little (B,G,R,A in memory), the
	// same byte order, so the streaming texture can alias the surface's
	// Pixels() directly with no per-frame channel shuffle.
	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ARGB32),
		sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	defer texture.Destroy()

	surf := vg.NewSurface(width, height)
	canvas := vg.NewCanvas(surf)

	var frame float64
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}

		draw(canvas, width, height, frame)
		frame++

		pix := surf.Pixels()
		if err := texture.Update(nil, unsafe.Pointer(&pix[0]), surf.Stride()); err != nil {
			return fmt.Errorf("update texture: %w", err)
		}
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		sdl.Delay(16)
	}

	canvas.Destroy()
	surf.Destroy()
	return nil
}

// draw renders one frame: a checkerboard ground, a rotating gradient-filled
// square, and a stroked circle, exercising fill, stroke, transforms, and a
// linear gradient paint in one pass.
func draw(c *vg.Canvas, width, height int, frame float64) {
	c.ResetMatrix()
	c.ResetPath()
	c.SetOperator(vg.OpSrc)
	c.SetSolidRGBA(0, 0, 0, 1)
	c.Rect(0, 0, float64(width), float64(height))
	c.Fill()

	c.SetOperator(vg.OpSrcOver)

	const tile = 32
	for y := 0; y*tile < height; y++ {
		for x := 0; x*tile < width; x++ {
			if (x+y)%2 != 0 {
				continue
			}
			c.ResetPath()
			c.Rect(float64(x*tile), float64(y*tile), tile, tile)
			c.SetSolidRGBA(0.15, 0.15, 0.18, 1)
			c.Fill()
		}
	}

	cx, cy := float64(width)/2, float64(height)/2
	angle := frame * 0.02

	c.Save()
	c.Translate(cx, cy)
	c.Rotate(angle)
	c.ResetPath()
	c.Rect(-80, -80, 160, 160)
	gradient := vg.NewLinearGradientPaint(-80, 0, 80, 0, []vg.GradientStop{
		{Offset: 0, Color: vg.RGBA(1, 0.2, 0.2, 1)},
		{Offset: 0.5, Color: vg.RGBA(0.2, 1, 0.3, 1)},
		{Offset: 1, Color: vg.RGBA(0.2, 0.4, 1, 1)},
	}, vg.SpreadPad)
	c.SetPaint(gradient)
	c.Fill()
	gradient.Destroy()
	c.Restore()

	c.ResetPath()
	c.Circle(cx, cy, 140+20*math.Sin(frame*0.05))
	c.SetSolidRGBA(1, 1, 1, 0.8)
	c.SetStrokeStyle(vg.StrokeStyle{Width: 3, Cap: vg.CapRound, Join: vg.JoinRound, MiterLimit: 4})
	c.Stroke()
}
