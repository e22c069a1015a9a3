// Package timepicker composes wheels into an hour / minute / second / am-pm
// picker and reassembles their committed values into a time of day.
package timepicker

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-theft-auto/wheel"
)

const day = 24 * time.Hour

// NumberList returns n two-digit labels counting up from start.
func NumberList(n, start int) []string {
	list := make([]string, n)
	for i := range list {
		list[i] = fmt.Sprintf("%02d", start+i)
	}
	return list
}

// Value lists shared by all pickers. Wheels copy them on construction.
var (
	TwentyFourHourList = NumberList(24, 0) // "00".."23"
	TwelveHourList     = NumberList(12, 1) // "01".."12"
	SixtyList          = NumberList(60, 0) // "00".."59"
	MeridiemList       = []string{"am", "pm"}
)

// Option configures a Picker.
type Option func(*config)

type config struct {
	use24       bool
	showSeconds bool
	onChange    func(time.Duration)
	onScroll    func(bool)
	wheelOpts   []wheel.Option
}

// Use24Hour selects the "00".."23" hour list and hides the am/pm wheel.
func Use24Hour(on bool) Option { return func(c *config) { c.use24 = on } }

// ShowSeconds adds a seconds wheel.
func ShowSeconds(on bool) Option { return func(c *config) { c.showSeconds = on } }

// OnChange registers the callback fired with the new time of day after any
// wheel commits.
func OnChange(fn func(time.Duration)) Option { return func(c *config) { c.onChange = fn } }

// OnScroll registers the observer told when any wheel starts or stops
// being dragged.
func OnScroll(fn func(bool)) Option { return func(c *config) { c.onScroll = fn } }

// WithWheelOptions passes geometry and color options to every wheel.
// Commit and scroll callbacks are owned by the picker and overridden.
func WithWheelOptions(opts ...wheel.Option) Option {
	return func(c *config) { c.wheelOpts = append(c.wheelOpts, opts...) }
}

// Picker is a time-of-day picker built from string wheels.
type Picker struct {
	cfg config

	hour, minute, second int

	hourW, minuteW, secondW, meridiemW *wheel.Wheel[string]
}

// TimeOfDay returns the wall-clock time of t as a duration since midnight
// in t's location.
func TimeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// Now is TimeOfDay of the current local time.
func Now() time.Duration { return TimeOfDay(time.Now()) }

// New creates a picker showing value, reduced modulo 24 hours.
func New(value time.Duration, opts ...Option) (*Picker, error) {
	p := &Picker{}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	p.setFields(value)

	var err error
	if p.hourW, err = p.newWheel(p.hourList(), p.hourLabel(), p.commitHour); err != nil {
		return nil, fmt.Errorf("hour wheel: %w", err)
	}
	if p.minuteW, err = p.newWheel(SixtyList, twoDigits(p.minute), p.commitMinute); err != nil {
		return nil, fmt.Errorf("minute wheel: %w", err)
	}
	if p.cfg.showSeconds {
		if p.secondW, err = p.newWheel(SixtyList, twoDigits(p.second), p.commitSecond); err != nil {
			return nil, fmt.Errorf("second wheel: %w", err)
		}
	}
	if !p.cfg.use24 {
		if p.meridiemW, err = p.newMeridiemWheel(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Picker) newWheel(values []string, v string, commit func(string)) (*wheel.Wheel[string], error) {
	opts := append([]wheel.Option{}, p.cfg.wheelOpts...)
	opts = append(opts, wheel.OnCommit(commit), wheel.OnScrollStateChange(p.scrolled))
	return wheel.New(values, v, opts...)
}

func (p *Picker) newMeridiemWheel() (*wheel.Wheel[string], error) {
	w, err := p.newWheel(MeridiemList, p.meridiem(), p.commitMeridiem)
	if err != nil {
		return nil, fmt.Errorf("am/pm wheel: %w", err)
	}
	return w, nil
}

func (p *Picker) setFields(value time.Duration) {
	value = ((value % day) + day) % day
	p.hour = int(value / time.Hour)
	p.minute = int(value/time.Minute) % 60
	p.second = int(value/time.Second) % 60
}

func (p *Picker) hourList() []string {
	if p.cfg.use24 {
		return TwentyFourHourList
	}
	return TwelveHourList
}

// hourLabel is the hour as shown on the hour wheel: 0-23 in 24-hour mode,
// 12, 1..11 in 12-hour mode.
func (p *Picker) hourLabel() string {
	if p.cfg.use24 {
		return twoDigits(p.hour)
	}
	h := p.hour % 12
	if h == 0 {
		h = 12
	}
	return twoDigits(h)
}

func (p *Picker) meridiem() string {
	if p.hour < 12 {
		return "am"
	}
	return "pm"
}

func (p *Picker) pmOffset() int {
	if p.hour >= 12 {
		return 12
	}
	return 0
}

func (p *Picker) commitHour(v string) {
	n, err := strconv.Atoi(v)
	if err != nil {
		wheel.Logger().Warn("timepicker: bad hour label", "value", v, "err", err)
		return
	}
	if p.cfg.use24 {
		p.hour = n % 24
	} else {
		p.hour = n%12 + p.pmOffset()
	}
	p.changed()
}

func (p *Picker) commitMinute(v string) {
	n, err := strconv.Atoi(v)
	if err != nil {
		wheel.Logger().Warn("timepicker: bad minute label", "value", v, "err", err)
		return
	}
	p.minute = n % 60
	p.changed()
}

func (p *Picker) commitSecond(v string) {
	n, err := strconv.Atoi(v)
	if err != nil {
		wheel.Logger().Warn("timepicker: bad second label", "value", v, "err", err)
		return
	}
	p.second = n % 60
	p.changed()
}

func (p *Picker) commitMeridiem(v string) {
	pm := 0
	if v == "pm" {
		pm = 12
	}
	p.hour = p.hour%12 + pm
	p.changed()
}

func (p *Picker) changed() {
	p.sync()
	value := p.Value()
	wheel.Logger().Debug("timepicker: change", "value", value)
	if p.cfg.onChange != nil {
		p.cfg.onChange(value)
	}
}

func (p *Picker) scrolled(scrolling bool) {
	if p.cfg.onScroll != nil {
		p.cfg.onScroll(scrolling)
	}
}

// sync pushes the fields into wheels whose shown value differs, leaving
// wheels that already agree (including any being dragged) untouched.
func (p *Picker) sync() {
	setIfChanged(p.hourW, p.hourLabel())
	setIfChanged(p.minuteW, twoDigits(p.minute))
	setIfChanged(p.secondW, twoDigits(p.second))
	setIfChanged(p.meridiemW, p.meridiem())
}

func setIfChanged(w *wheel.Wheel[string], v string) {
	if w != nil && w.Value() != v {
		w.SetValue(v)
	}
}

// Value returns the selected time of day.
func (p *Picker) Value() time.Duration {
	return time.Duration(p.hour)*time.Hour +
		time.Duration(p.minute)*time.Minute +
		time.Duration(p.second)*time.Second
}

// SetValue changes the selected time without firing OnChange.
func (p *Picker) SetValue(value time.Duration) {
	p.setFields(value)
	p.sync()
}

// Use24Hour reports whether the picker uses the 24-hour list.
func (p *Picker) Use24Hour() bool { return p.cfg.use24 }

// ShowSeconds reports whether the seconds wheel is shown.
func (p *Picker) ShowSeconds() bool { return p.cfg.showSeconds }

// SetUse24Hour switches the hour list. The selected time is kept; a drag
// on the hour wheel is aborted.
func (p *Picker) SetUse24Hour(on bool) error {
	if p.cfg.use24 == on {
		return nil
	}
	p.cfg.use24 = on
	if err := p.hourW.Replace(p.hourList(), p.hourLabel()); err != nil {
		return fmt.Errorf("hour wheel: %w", err)
	}
	if on {
		if p.meridiemW != nil {
			p.meridiemW.Abort()
		}
		p.meridiemW = nil
		return nil
	}
	w, err := p.newMeridiemWheel()
	if err != nil {
		return err
	}
	p.meridiemW = w
	return nil
}

// Hour returns the hour wheel.
func (p *Picker) Hour() *wheel.Wheel[string] { return p.hourW }

// Minute returns the minute wheel.
func (p *Picker) Minute() *wheel.Wheel[string] { return p.minuteW }

// Second returns the seconds wheel, or nil when seconds are hidden.
func (p *Picker) Second() *wheel.Wheel[string] { return p.secondW }

// Meridiem returns the am/pm wheel, or nil in 24-hour mode.
func (p *Picker) Meridiem() *wheel.Wheel[string] { return p.meridiemW }

// ColumnKind distinguishes wheels from fixed dividers.
type ColumnKind int

const (
	ColumnWheel ColumnKind = iota
	ColumnDivider
)

// Column is one horizontal cell of the picker in display order.
type Column struct {
	Kind  ColumnKind
	Wheel *wheel.Wheel[string] // set for ColumnWheel
	Text  string               // set for ColumnDivider
}

// Columns returns the picker layout: hour, ":", minute, then am/pm in
// 12-hour mode, then ":" and seconds when shown.
func (p *Picker) Columns() []Column {
	cols := []Column{
		{Kind: ColumnWheel, Wheel: p.hourW},
		{Kind: ColumnDivider, Text: ":"},
		{Kind: ColumnWheel, Wheel: p.minuteW},
	}
	if p.meridiemW != nil {
		cols = append(cols, Column{Kind: ColumnWheel, Wheel: p.meridiemW})
	}
	if p.secondW != nil {
		cols = append(cols,
			Column{Kind: ColumnDivider, Text: ":"},
			Column{Kind: ColumnWheel, Wheel: p.secondW},
		)
	}
	return cols
}

// Wheels returns the wheel columns in display order.
func (p *Picker) Wheels() []*wheel.Wheel[string] {
	var ws []*wheel.Wheel[string]
	for _, c := range p.Columns() {
		if c.Kind == ColumnWheel {
			ws = append(ws, c.Wheel)
		}
	}
	return ws
}

func twoDigits(n int) string {
	return fmt.Sprintf("%02d", n)
}
