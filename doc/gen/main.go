// Command gen renders wheel snapshots at several drag offsets and saves
// them as PNGs in doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/ [-out doc/imgs] [-font path/to/font.ttf]
//
// Without -font, labels are drawn as bars whose width follows the label
// length.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/go-theft-auto/wheel"
	"github.com/go-theft-auto/wheel/timepicker"
)

const (
	columnWidth  = 120
	columnGap    = 16
	wheelHeight  = 200
	itemHeight   = 30
	fontSize     = 22.0
	barCharWidth = 9.0
)

// offsets are drag displacements in units of one slot.
var offsets = []float64{-1, -0.5, 0, 0.5, 1}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type column struct {
	name  string
	wheel *wheel.Wheel[string]
}

func run() error {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	fontPath := flag.String("font", "", "TTF/OTF font for labels")
	flag.Parse()

	var source *text.FontSource
	if *fontPath != "" {
		var err error
		source, err = text.NewFontSourceFromFile(*fontPath)
		if err != nil {
			return fmt.Errorf("load font: %w", err)
		}
	}

	cols, err := buildColumns()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	r := &snapshotRenderer{source: source, faces: map[int]text.Face{}}
	for _, u := range offsets {
		path := filepath.Join(*outDir, fmt.Sprintf("drag_%+.1f.png", u))
		if err := r.render(path, cols, u); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Println("wrote", path)
	}
	return nil
}

func buildColumns() ([]column, error) {
	opts := []wheel.Option{
		wheel.WithContainerHeight(wheelHeight),
		wheel.WithItemHeight(itemHeight),
	}
	specs := []struct {
		name   string
		values []string
		value  string
	}{
		{"hour", timepicker.TwentyFourHourList, "09"},
		{"minute", timepicker.SixtyList, "30"},
		{"meridiem", timepicker.MeridiemList, "am"},
	}

	cols := make([]column, 0, len(specs))
	for _, s := range specs {
		w, err := wheel.New(s.values, s.value, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s wheel: %w", s.name, err)
		}
		cols = append(cols, column{name: s.name, wheel: w})
	}
	return cols, nil
}

type snapshotRenderer struct {
	source *text.FontSource
	faces  map[int]text.Face // by size in tenths of a point
}

func (r *snapshotRenderer) face(scale float64) text.Face {
	key := int(math.Round(fontSize * scale * 10))
	f, ok := r.faces[key]
	if !ok {
		f = r.source.Face(float64(key) / 10)
		r.faces[key] = f
	}
	return f
}

// render draws every column dragged by units slots and saves the PNG.
func (r *snapshotRenderer) render(path string, cols []column, units float64) error {
	width := len(cols)*columnWidth + (len(cols)+1)*columnGap
	height := wheelHeight + 2*columnGap

	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.SetHexColor("#1e1e24")
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Fill(); err != nil {
		return err
	}

	for i, col := range cols {
		x := float64(columnGap + i*(columnWidth+columnGap))
		if err := r.drawColumn(dc, col.wheel, x, columnGap, units); err != nil {
			return fmt.Errorf("%s: %w", col.name, err)
		}
	}
	return dc.SavePNG(path)
}

func (r *snapshotRenderer) drawColumn(dc *gg.Context, w *wheel.Wheel[string], x, y, units float64) error {
	w.Grant()
	w.Move(units * w.Unit())
	slots := w.VisibleSlots()
	w.Abort()

	dc.SetHexColor("#ffffff")
	dc.DrawRectangle(x, y, columnWidth, wheelHeight)
	if err := dc.Fill(); err != nil {
		return err
	}
	center := y + wheelHeight/2
	dc.SetRGBA(0, 0, 0, 0.08)
	dc.DrawRectangle(x, center-itemHeight/2, columnWidth, itemHeight)
	if err := dc.Fill(); err != nil {
		return err
	}

	for _, s := range slots {
		if s.Empty || s.Scale < 0.05 {
			continue
		}
		setColor(dc, s.Color)
		cy := center + s.VerticalOffset
		if r.source != nil {
			dc.SetFont(r.face(s.Scale))
			dc.DrawStringAnchored(s.Value, x+columnWidth/2, cy, 0.5, 0.35)
			continue
		}
		bw := barCharWidth * float64(len(s.Value))
		bh := itemHeight * 0.6 * s.Scale
		dc.DrawRectangle(x+(columnWidth-bw)/2, cy-bh/2, bw, bh)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func setColor(dc *gg.Context, c uint32) {
	r, g, b, a := wheel.UnpackRGBA(c)
	dc.SetRGBA(float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255)
}
