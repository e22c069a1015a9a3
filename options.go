package wheel

// Option configures a Wheel.
type Option func(*options)

// options holds wheel configuration keyed by name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for wheel options.
//
// Example:
//
//	var OptHaptics = wheel.NewOptKey("haptics", false)
//
//	w, err := wheel.New(values, v, wheel.WithOpt(OptHaptics, true))
//
//	// Inside an extension that receives the same option slice:
//	enabled := wheel.ApplyAndGet(opts, OptHaptics)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the value used when the option is not set.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset or of
// another type.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// --- Geometry ---
var (
	OptDisplayCount    = NewOptKey("displayCount", 5)
	OptItemHeight      = NewOptKey[float64]("itemHeight", 15)
	OptWheelHeight     = NewOptKey[float64]("wheelHeight", 0) // 0 = derive from container
	OptContainerHeight = NewOptKey[float64]("containerHeight", 100)
)

// --- Colors ---
var (
	OptSelectedColor = NewOptKey("selectedColor", ColorBlack)
	OptDisabledColor = NewOptKey("disabledColor", ColorGray)
)

// --- Callbacks ---
var (
	OptOnScrollStateChange = NewOptKey[func(bool)]("onScrollStateChange", nil)
)

// commitKey is generic over the value type, so it is built per call
// rather than declared once.
func commitKey[T any]() OptKey[func(T)] {
	return NewOptKey[func(T)]("onCommit", nil)
}

// WithDisplayCount sets how many slots are meaningfully visible.
func WithDisplayCount(n int) Option { return WithOpt(OptDisplayCount, n) }

// WithItemHeight sets the height of one slot.
func WithItemHeight(h float64) Option { return WithOpt(OptItemHeight, h) }

// WithWheelHeight sets the wheel height; the radius is half of it.
func WithWheelHeight(h float64) Option { return WithOpt(OptWheelHeight, h) }

// WithContainerHeight sets the measured container height, used for the
// radius when no wheel height is configured.
func WithContainerHeight(h float64) Option { return WithOpt(OptContainerHeight, h) }

// WithColors sets the emphasized and muted slot colors.
func WithColors(selected, disabled uint32) Option {
	return func(o *options) {
		WithOpt(OptSelectedColor, selected)(o)
		WithOpt(OptDisabledColor, disabled)(o)
	}
}

// OnCommit registers the callback fired once per gesture that changes the
// selected value. T must match the wheel's value type.
func OnCommit[T any](fn func(T)) Option { return WithOpt(commitKey[T](), fn) }

// OnScrollStateChange registers the observer told when a drag starts (true)
// and ends (false).
func OnScrollStateChange(fn func(bool)) Option { return WithOpt(OptOnScrollStateChange, fn) }
