package wheel

import "math"

// Extrapolate selects how Interpolate treats inputs outside its domain.
type Extrapolate int

const (
	// ExtrapolateExtend continues the linear mapping past the domain.
	ExtrapolateExtend Extrapolate = iota
	// ExtrapolateClamp saturates at the range endpoints.
	ExtrapolateClamp
)

// Tilt limits for the perspective rotation. The angle window is
// asymmetric: slots above the center tilt over a longer arc.
const (
	tiltAngleMin   = -math.Pi / 2.7
	tiltAngleMax   = math.Pi / 3
	maxRotationDeg = 90.0
)

// Interpolate maps x linearly from [inMin, inMax] onto [outMin, outMax].
func Interpolate(x, inMin, inMax, outMin, outMax float64, mode Extrapolate) float64 {
	if inMax == inMin {
		return outMin
	}
	if mode == ExtrapolateClamp {
		if x <= inMin {
			return outMin
		}
		if x >= inMax {
			return outMax
		}
	}
	t := (x - inMin) / (inMax - inMin)
	return outMin + t*(outMax-outMin)
}

// Geometry describes the simulated cylinder.
type Geometry struct {
	Radius       float64
	DisplayCount int
}

// Unit is the drag distance that moves the wheel by exactly one slot.
func (g Geometry) Unit() float64 {
	return g.Radius * 2 / float64(g.DisplayCount)
}

// Transform is the screen placement of a single slot.
type Transform struct {
	Angle          float64 // position on the cylinder, radians in [-π/2, π/2]
	VerticalOffset float64 // distance from the wheel center, in [-Radius, Radius]
	Rotation       float64 // tilt about the horizontal axis, degrees in [-90, 90]
	Scale          float64 // apparent height factor, cos(Rotation)
}

// SlotAngle returns the cylinder angle of a slot slotOffset positions away
// from the selected one, for the given drag offset.
//
// The drag is first shifted into the slot's own range (extended past
// ±Radius so slots keep sliding during a long drag), then mapped onto
// [-π/2, π/2] with clamping.
func (g Geometry) SlotAngle(dragOffset float64, slotOffset int) float64 {
	shift := g.Unit() * float64(slotOffset)
	pos := Interpolate(dragOffset, -g.Radius, g.Radius, -g.Radius+shift, g.Radius+shift, ExtrapolateExtend)
	return Interpolate(pos, -g.Radius, g.Radius, -math.Pi/2, math.Pi/2, ExtrapolateClamp)
}

// SlotTransform computes the full placement of a slot.
func (g Geometry) SlotTransform(dragOffset float64, slotOffset int) Transform {
	angle := g.SlotAngle(dragOffset, slotOffset)
	rot := Interpolate(angle, tiltAngleMin, tiltAngleMax, -maxRotationDeg, maxRotationDeg, ExtrapolateClamp)
	return Transform{
		Angle:          angle,
		VerticalOffset: g.Radius * math.Sin(angle),
		Rotation:       rot,
		Scale:          math.Cos(rot * math.Pi / 180),
	}
}
