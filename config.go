package wheel

import "fmt"

// Config is the resolved geometry and color configuration of a Wheel.
type Config struct {
	DisplayCount    int
	ItemHeight      float64
	WheelHeight     float64 // 0 = use ContainerHeight
	ContainerHeight float64
	SelectedColor   uint32
	DisabledColor   uint32
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return configFrom(options{})
}

func configFrom(o options) Config {
	return Config{
		DisplayCount:    GetOpt(o, OptDisplayCount),
		ItemHeight:      GetOpt(o, OptItemHeight),
		WheelHeight:     GetOpt(o, OptWheelHeight),
		ContainerHeight: GetOpt(o, OptContainerHeight),
		SelectedColor:   GetOpt(o, OptSelectedColor),
		DisabledColor:   GetOpt(o, OptDisabledColor),
	}
}

// Radius is half the wheel height, or half the container height when no
// wheel height is set.
func (c Config) Radius() float64 {
	if c.WheelHeight != 0 {
		return c.WheelHeight / 2
	}
	return c.ContainerHeight / 2
}

// Geometry returns the cylinder described by the configuration.
func (c Config) Geometry() Geometry {
	return Geometry{Radius: c.Radius(), DisplayCount: c.DisplayCount}
}

// Validate reports configuration that would break the geometry math.
func (c Config) Validate() error {
	if c.DisplayCount <= 0 {
		return invalidConfig(fmt.Sprintf("display count must be positive, got %d", c.DisplayCount))
	}
	if r := c.Radius(); !(r > 0) || !finite(r) {
		return invalidConfig(fmt.Sprintf("radius must be positive, got %g", r))
	}
	if c.ItemHeight < 0 || !finite(c.ItemHeight) {
		return invalidConfig(fmt.Sprintf("item height must not be negative, got %g", c.ItemHeight))
	}
	return nil
}
