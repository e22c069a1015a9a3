// Example ebiten shows a time picker and a standalone month wheel in an
// Ebitengine window.
//
//	go run ./example/ebiten/
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-theft-auto/wheel"
	"github.com/go-theft-auto/wheel/backend/ebitengine"
	"github.com/go-theft-auto/wheel/timepicker"
)

const (
	screenWidth  = 520
	screenHeight = 320
)

var (
	pickerBounds = wheel.Rect{X: 20, Y: 60, W: 320, H: 200}
	monthBounds  = wheel.Rect{X: 360, Y: 60, W: 140, H: 200}
)

type game struct {
	renderer   *ebitengine.Renderer
	surface    *wheel.Surface
	input      *wheel.InputState
	picker     *timepicker.Picker
	controller *timepicker.Controller
	month      *wheel.Wheel[time.Month]
	monthDrag  *wheel.PointerTracker
	status     string
}

func newGame() (*game, error) {
	g := &game{input: wheel.NewInputState()}

	selected, disabled := wheel.GTAColors()
	opts := []wheel.Option{
		wheel.WithContainerHeight(float64(pickerBounds.H)),
		wheel.WithItemHeight(30),
		wheel.WithColors(selected, disabled),
	}

	var err error
	g.picker, err = timepicker.New(18*time.Hour+45*time.Minute,
		timepicker.WithWheelOptions(opts...),
		timepicker.OnChange(func(d time.Duration) { g.status = fmt.Sprintf("time %s", d) }),
	)
	if err != nil {
		return nil, err
	}
	g.controller = timepicker.NewController(g.picker)

	months := make([]time.Month, 12)
	for i := range months {
		months[i] = time.Month(i + 1)
	}
	g.month, err = wheel.New(months, time.October, append(opts,
		wheel.OnCommit(func(m time.Month) { g.status = fmt.Sprintf("month %s", m) }),
	)...)
	if err != nil {
		return nil, err
	}
	g.monthDrag = wheel.NewPointerTracker(g.month, monthBounds)
	return g, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.renderer == nil {
		g.renderer = ebitengine.NewRenderer()
		g.surface = wheel.NewSurface(g.renderer, wheel.WithStyle(wheel.GTAStyle()))
	}

	ebitengine.Poll(g.input)
	g.controller.Update(g.input, pickerBounds, g.surface.Style())
	g.monthDrag.Update(g.input)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, ebitengine.Color(wheel.RGBA(30, 30, 36, 255)), false)
	if g.surface == nil {
		return
	}

	g.renderer.SetTarget(screen)
	style := g.surface.Style()
	err := g.surface.Frame(func(dl *wheel.DrawList) {
		timepicker.DrawPicker(dl, g.picker, pickerBounds, style)
		monthStyle := style
		monthStyle.FontScale = 1.5
		wheel.DrawWheel(dl, g.month, monthBounds, monthStyle)
	})
	if err != nil {
		log.Printf("render: %v", err)
	}

	ebitenutil.DebugPrintAt(screen, "drag or scroll a column, arrows step, tab focus, q quits", 20, 12)
	ebitenutil.DebugPrintAt(screen, g.status, 20, 32)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	g, err := newGame()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("wheel on ebitengine")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
