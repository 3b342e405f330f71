package spline

import (
	"math"

	"github.com/katalvlaran/indoornav/gridgraph"
)

// CellCenter maps a grid cell to the centre of its rectangle in rendering
// space: (col*cellW + cellW/2, row*cellH + cellH/2).
func CellCenter(c gridgraph.Coord, cellW, cellH float64) Point {
	return Point{
		X: float64(c.Col)*cellW + cellW/2,
		Y: float64(c.Row)*cellH + cellH/2,
	}
}

// SmoothPath converts a route into Bezier segments using DefaultOptions.
// A route of N cells yields N-1 segments; fewer than two cells yield none.
func SmoothPath(path gridgraph.Path, cellW, cellH float64) []Segment {
	if len(path) < 2 {
		return nil
	}
	pts := make([]Point, len(path))
	for i, c := range path {
		pts[i] = CellCenter(c, cellW, cellH)
	}
	return Smooth(pts, nil)
}

// Smooth interpolates points with a Catmull-Rom spline and returns it as
// cubic Bezier segments.
//
// Algorithm:
//
//	For segment i joining p[i] to p[i+1], the flanking points p[i-1] and
//	p[i+2] are clamped to the ends by repeating the boundary point, then
//
//	  cp1 = p[i]   + (p[i+1] - p[i-1]) * tension / denom
//	  cp2 = p[i+1] - (p[i+2] - p[i])   * tension / denom
//
//	Length is the sum of chord lengths over Samples equal steps of t.
//
// Complexity: O(N·Samples) time, O(N) memory.
func Smooth(points []Point, opts *Options) []Segment {
	n := len(points)
	if n < 2 {
		return nil
	}
	o := opts.normalize()
	k := o.Tension / o.Denominator

	segs := make([]Segment, 0, n-1)
	for i := 0; i < n-1; i++ {
		p0 := points[max(0, i-1)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(n-1, i+2)]

		s := Segment{
			P1:  p1,
			CP1: p1.Add(p2.Sub(p0).Scale(k)),
			CP2: p2.Sub(p3.Sub(p1).Scale(k)),
			P2:  p2,
		}
		s.Length = arcLength(s, o.Samples)
		segs = append(segs, s)
	}
	return segs
}

// lengthEps is the arc length below which a segment counts as a point.
const lengthEps = 1e-9

// arcLength approximates the curve length by polyline sampling. A segment
// whose four points coincide, or whose sampled length is below lengthEps,
// has length 0.
func arcLength(s Segment, steps int) float64 {
	if s.P1 == s.P2 && s.CP1 == s.P1 && s.CP2 == s.P2 {
		return 0
	}
	length := 0.0
	prev := s.P1
	for i := 1; i <= steps; i++ {
		cur := s.At(float64(i) / float64(steps))
		length += prev.Dist(cur)
		prev = cur
	}
	if length < lengthEps {
		return 0
	}
	return length
}

// TotalLength sums the segment lengths.
func TotalLength(segs []Segment) float64 {
	total := 0.0
	for _, s := range segs {
		total += s.Length
	}
	return total
}

// tangentEps is the progress offset used to estimate the heading.
const tangentEps = 0.001

// PointAtProgress maps t in [0,1] (clamped) to a point on the curve and the
// heading there. ok is false only when segs is empty.
//
// The target length t·TotalLength is located by accumulating segment
// lengths; within the segment the remaining length ratio is used directly
// as the Bezier parameter. Segments of zero length are skipped. The heading
// is the direction from the point at t-0.001 to the point at t+0.001, each
// clamped to [0,1].
func PointAtProgress(segs []Segment, t float64) (Pose, bool) {
	if len(segs) == 0 {
		return Pose{}, false
	}
	t = clamp01(t)
	p := pointAt(segs, t)
	a := pointAt(segs, math.Max(0, t-tangentEps))
	b := pointAt(segs, math.Min(1, t+tangentEps))
	return Pose{Point: p, Angle: math.Atan2(b.Y-a.Y, b.X-a.X)}, true
}

func pointAt(segs []Segment, t float64) Point {
	total := TotalLength(segs)
	if total <= 0 {
		return segs[0].P1
	}
	target := t * total
	for _, s := range segs {
		if s.Length <= 0 {
			continue
		}
		if target <= s.Length {
			return s.At(target / s.Length)
		}
		target -= s.Length
	}
	return segs[len(segs)-1].P2
}

func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
