package spline

import "math"

// DefaultTraceSteps is the minimum number of samples Trace takes per segment.
const DefaultTraceSteps = 5

// Trace returns the polyline of the curve drawn up to progress t, for
// rendering a route that grows over time. Each segment contributes
// max(minSteps, floor(Length/10)) + 1 samples; a partially covered segment
// is sampled over its covered parameter range only.
//
// The first point is always segs[0].P1, so t == 0 returns a single point.
// Empty segs return nil.
func Trace(segs []Segment, t float64, minSteps int) []Point {
	if len(segs) == 0 {
		return nil
	}
	if minSteps <= 0 {
		minSteps = DefaultTraceSteps
	}
	t = clamp01(t)
	target := t * TotalLength(segs)

	out := []Point{segs[0].P1}
	acc := 0.0
	for _, s := range segs {
		if target <= acc {
			break
		}
		if s.Length <= 0 {
			continue
		}
		cover := math.Min(1, (target-acc)/s.Length)
		steps := max(minSteps, int(math.Floor(s.Length/10)))
		for i := 1; i <= steps; i++ {
			out = append(out, s.At(float64(i)/float64(steps)*cover))
		}
		acc += s.Length
	}
	return out
}

// Markers returns n progress values spaced along the route ahead of t,
// wrapping past the end: (t + i*spacing) mod 1 for i in [0,n).
func Markers(t float64, n int, spacing float64) []float64 {
	if n <= 0 {
		return nil
	}
	t = clamp01(t)
	out := make([]float64, n)
	for i := range out {
		v := math.Mod(t+float64(i)*spacing, 1)
		if v < 0 {
			v++
		}
		out[i] = v
	}
	return out
}

// Indicators returns evenly spaced progress values for static direction
// arrows: min(5, len(segs)) of them at i/(count+1).
func Indicators(segs []Segment) []float64 {
	count := min(5, len(segs))
	out := make([]float64, count)
	for i := range out {
		out[i] = float64(i+1) / float64(count+1)
	}
	return out
}

// EaseInOutCubic maps linear animation time in [0,1] to eased progress.
func EaseInOutCubic(x float64) float64 {
	x = clamp01(x)
	if x < 0.5 {
		return 4 * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 3)/2
}
