// Command gbcore-sdl is a thin SDL2 window shell around the core: it
// owns no emulation logic, only the native window, input polling and
// a file-picker fallback when no ROM path is given on the command
// line, per SPEC_FULL.md §11's front-end-shells-are-external-collaborators
// rule.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"

	"gbcore/internal/gameboy"
	"gbcore/internal/joypad"
	"gbcore/internal/ppu"
	"gbcore/pkg/canvas"
	"gbcore/pkg/log"
	"gbcore/pkg/save"
)

const windowScale = 4

func main() {
	romPath := flag.String("rom", "", "path to a .gb/.gbc ROM image")
	flag.Parse()

	path := *romPath
	if path == "" {
		picked, err := dialog.File().Filter("Game Boy ROM", "gb", "gbc").Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "gbcore-sdl: no ROM selected:", err)
			os.Exit(1)
		}
		path = picked
	}

	logger := log.New()
	opts := []gameboy.Option{gameboy.WithLogger(logger)}
	if sink, sinkErr := save.NewFileSink(".", "gbcore"); sinkErr != nil {
		logger.Warnf("save sink unavailable: %v", sinkErr)
	} else {
		opts = append(opts, gameboy.WithSaveSink(sink))
	}

	console, err := gameboy.Load(path, opts...)
	if err != nil {
		logger.Errorf("loading %s: %v", path, err)
		os.Exit(1)
	}
	defer console.Close()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		logger.Errorf("sdl init: %v", err)
		os.Exit(1)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("gbcore", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		ppu.ScreenWidth*windowScale, ppu.ScreenHeight*windowScale, sdl.WINDOW_SHOWN)
	if err != nil {
		logger.Errorf("sdl create window: %v", err)
		os.Exit(1)
	}
	defer window.Destroy()

	surfaceRenderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		logger.Errorf("sdl create renderer: %v", err)
		os.Exit(1)
	}
	defer surfaceRenderer.Destroy()

	texture, err := surfaceRenderer.CreateTexture(sdl.PIXELFORMAT_RGBA32, sdl.TEXTUREACCESS_STREAMING,
		ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		logger.Errorf("sdl create texture: %v", err)
		os.Exit(1)
	}
	defer texture.Destroy()

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				handleKey(console, e)
			}
		}

		frame := console.Frame()
		img := canvas.ToImage(frame)
		if err := texture.Update(nil, img.Pix, img.Stride); err != nil {
			logger.Warnf("texture update: %v", err)
			continue
		}

		surfaceRenderer.Clear()
		surfaceRenderer.Copy(texture, nil, nil)
		surfaceRenderer.Present()
	}
}

func handleKey(console *gameboy.Console, e *sdl.KeyboardEvent) {
	down := e.Type == sdl.KEYDOWN
	switch e.Keysym.Sym {
	case sdl.K_z:
		console.Press(joypad.A, down)
	case sdl.K_x:
		console.Press(joypad.B, down)
	case sdl.K_RETURN:
		console.Press(joypad.Start, down)
	case sdl.K_BACKSPACE:
		console.Press(joypad.Select, down)
	case sdl.K_UP:
		console.Press(joypad.Up, down)
	case sdl.K_DOWN:
		console.Press(joypad.Down, down)
	case sdl.K_LEFT:
		console.Press(joypad.Left, down)
	case sdl.K_RIGHT:
		console.Press(joypad.Right, down)
	}
}
