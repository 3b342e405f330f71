package spline

import "math"

// Point is a position in rendering space (pixels or display units).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p*k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Segment is one cubic Bezier piece of a smoothed route, from P1 to P2 with
// control points CP1 and CP2. Length is the sampled arc length.
type Segment struct {
	P1, CP1, CP2, P2 Point
	Length           float64
}

// At evaluates the Bezier curve at parameter t in [0,1].
func (s Segment) At(t float64) Point {
	switch t {
	case 0:
		return s.P1
	case 1:
		return s.P2
	}
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	a := mt2 * mt
	b := 3 * mt2 * t
	c := 3 * mt * t2
	d := t2 * t
	return Point{
		X: a*s.P1.X + b*s.CP1.X + c*s.CP2.X + d*s.P2.X,
		Y: a*s.P1.Y + b*s.CP1.Y + c*s.CP2.Y + d*s.P2.Y,
	}
}

// Pose is a point on the curve together with its heading in radians,
// measured like math.Atan2 in rendering space (0 = +X, π/2 = +Y).
type Pose struct {
	Point
	Angle float64
}

// Options tunes the smoothing.
//
// Fields:
//   - Tension    : Catmull-Rom tension; 0 draws straight lines between centres.
//   - Denominator: divisor applied to the tangent when deriving control points.
//   - Samples    : polyline steps used to estimate each segment's length.
//
// Zero or negative Denominator and Samples fall back to the defaults;
// a negative Tension is treated as 0.
type Options struct {
	Tension     float64
	Denominator float64
	Samples     int
}

// Default smoothing constants.
const (
	DefaultTension     = 0.5
	DefaultDenominator = 6
	DefaultSamples     = 20
)

// DefaultOptions returns tension 0.5, denominator 6 and 20 length samples.
func DefaultOptions() *Options {
	return &Options{
		Tension:     DefaultTension,
		Denominator: DefaultDenominator,
		Samples:     DefaultSamples,
	}
}

// normalize returns a copy of o with defaults filled in.
func (o *Options) normalize() Options {
	if o == nil {
		return *DefaultOptions()
	}
	out := *o
	if out.Tension < 0 {
		out.Tension = 0
	}
	if out.Denominator <= 0 {
		out.Denominator = DefaultDenominator
	}
	if out.Samples <= 0 {
		out.Samples = DefaultSamples
	}
	return out
}
