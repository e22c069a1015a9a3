// Example tui runs the time picker in a terminal.
//
//	go run ./example/tui/ -24h -seconds
//
// Drag a column with the mouse, scroll it with the wheel, or focus it with
// the arrow keys. Press t to switch between 12- and 24-hour lists.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/wheel"
	"github.com/go-theft-auto/wheel/timepicker"
	"github.com/go-theft-auto/wheel/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	use24 := flag.Bool("24h", false, "use the 24-hour list")
	seconds := flag.Bool("seconds", false, "show a seconds wheel")
	logPath := flag.String("log", "", "write debug log to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		wheel.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	selected, disabled := wheel.GTAColors()
	picker, err := timepicker.New(timepicker.Now(),
		timepicker.Use24Hour(*use24),
		timepicker.ShowSeconds(*seconds),
		timepicker.WithWheelOptions(wheel.WithColors(selected, disabled)),
	)
	if err != nil {
		return fmt.Errorf("time picker: %w", err)
	}

	model := tui.New(picker, "wheel time picker")
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	fmt.Println(formatTime(picker.Value()))
	return nil
}

func formatTime(d time.Duration) string {
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
