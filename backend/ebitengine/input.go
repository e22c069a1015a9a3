package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-theft-auto/wheel"
)

// Key auto-repeat timing in ticks.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

var keyMap = map[ebiten.Key]wheel.Key{
	ebiten.KeyArrowUp:    wheel.KeyUp,
	ebiten.KeyArrowDown:  wheel.KeyDown,
	ebiten.KeyArrowLeft:  wheel.KeyLeft,
	ebiten.KeyArrowRight: wheel.KeyRight,
	ebiten.KeyTab:        wheel.KeyTab,
	ebiten.KeyEscape:     wheel.KeyEscape,
}

var buttonMap = map[ebiten.MouseButton]wheel.MouseButton{
	ebiten.MouseButtonLeft:   wheel.MouseButtonLeft,
	ebiten.MouseButtonRight:  wheel.MouseButtonRight,
	ebiten.MouseButtonMiddle: wheel.MouseButtonMiddle,
}

// Poll replaces the per-frame part of input with Ebitengine's current
// state. Call it once at the top of Game.Update.
func Poll(input *wheel.InputState) {
	input.Reset()

	x, y := ebiten.CursorPosition()
	input.SetMousePos(float32(x), float32(y))

	for eb, b := range buttonMap {
		input.SetMouseButton(b, ebiten.IsMouseButtonPressed(eb))
	}

	_, wy := ebiten.Wheel()
	input.SetMouseWheel(float32(wy))

	for eb, k := range keyMap {
		if d := inpututil.KeyPressDuration(eb); d > repeatDelay && d%repeatInterval == 0 {
			// Re-arm so auto-repeat registers as a fresh press.
			input.SetKey(k, false)
		}
		input.SetKey(k, ebiten.IsKeyPressed(eb))
	}

	if !ebiten.IsFocused() {
		input.Cancel = true
	}
}
