// Example demonstrates a time picker in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag a column up or down, scroll it with the mouse wheel, or step the
// focused column with the arrow keys (Tab or Left/Right moves focus).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/wheel"
	"github.com/go-theft-auto/wheel/backend/opengl"
	"github.com/go-theft-auto/wheel/timepicker"
)

const (
	windowWidth  = 480
	windowHeight = 320
	windowTitle  = "wheel example"

	pickerWidth  = 360
	pickerHeight = 200
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	wheel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("wheel renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	surface := wheel.NewSurface(renderer, wheel.WithStyle(wheel.GTAStyle()))

	selected, disabled := wheel.GTAColors()
	picker, err := timepicker.New(9*time.Hour+30*time.Minute,
		timepicker.ShowSeconds(true),
		timepicker.WithWheelOptions(
			wheel.WithContainerHeight(pickerHeight),
			wheel.WithItemHeight(30),
			wheel.WithColors(selected, disabled),
		),
		timepicker.OnChange(func(d time.Duration) {
			window.SetTitle(fmt.Sprintf("%s - %s", windowTitle, d))
		}),
	)
	if err != nil {
		return fmt.Errorf("time picker: %w", err)
	}
	controller := timepicker.NewController(picker)

	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		renderer.Clear(wheel.RGBA(30, 30, 36, 255))

		bounds := wheel.Rect{
			X: float32(w-pickerWidth) / 2,
			Y: float32(h-pickerHeight) / 2,
			W: pickerWidth,
			H: pickerHeight,
		}
		controller.Update(input, bounds, surface.Style())
		inputAdapter.EndFrame()

		err := surface.Frame(func(dl *wheel.DrawList) {
			timepicker.DrawPicker(dl, picker, bounds, surface.Style())
		})
		if err != nil {
			return fmt.Errorf("wheel render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
