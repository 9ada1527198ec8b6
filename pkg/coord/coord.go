// Package coord provides the integer vector type shared by the world,
// simulator and viewport.
package coord

// Vec is an immutable pair of signed integer coordinates. All methods take
// value receivers and return fresh values.
type Vec struct {
	X, Y int
}

// New returns the vector (x, y).
func New(x, y int) Vec { return Vec{X: x, Y: y} }

// Splat broadcasts a scalar to both axes.
func Splat(n int) Vec { return Vec{X: n, Y: n} }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul multiplies elementwise.
func (v Vec) Mul(o Vec) Vec { return Vec{X: v.X * o.X, Y: v.Y * o.Y} }

// Div divides elementwise, rounding toward negative infinity, so
// New(-1, 31).Div(Splat(32)) is (-1, 0). A zero component in o panics.
func (v Vec) Div(o Vec) Vec { return Vec{X: FloorDiv(v.X, o.X), Y: FloorDiv(v.Y, o.Y)} }

// Map applies fx to X and fy to Y. A nil fy reuses fx.
func (v Vec) Map(fx, fy func(int) int) Vec {
	if fy == nil {
		fy = fx
	}
	return Vec{X: fx(v.X), Y: fy(v.Y)}
}

// Abs returns the elementwise absolute value.
func (v Vec) Abs() Vec { return v.Map(abs, nil) }

// Pack encodes v into a single int64: X in the high 32 bits, Y in the low 32
// bits, both as two's complement. Components outside the int32 range are
// outside the supported domain; their high bits are discarded and the
// result will not round-trip.
func (v Vec) Pack() int64 {
	return int64(uint64(uint32(int32(v.X)))<<32 | uint64(uint32(int32(v.Y))))
}

// Unpack is the inverse of Pack, sign-extending each half.
func Unpack(p int64) Vec {
	return Vec{X: int(int32(uint64(p) >> 32)), Y: int(int32(uint32(uint64(p))))}
}

// FloorDiv returns a/b rounded toward negative infinity. It panics if b is 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Neighbors8 lists the offsets of the eight cells surrounding the origin.
var Neighbors8 = [8]Vec{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
