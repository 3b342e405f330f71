package spline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoornav/bfs"
	"github.com/katalvlaran/indoornav/gridgraph"
	"github.com/katalvlaran/indoornav/spline"
)

const eps = 1e-9

func assertPoint(t *testing.T, want, got spline.Point, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-6, msgAndArgs...)
}

func TestCellCenter(t *testing.T) {
	assert.Equal(t, spline.Pt(5, 5), spline.CellCenter(gridgraph.C(0, 0), 10, 10))
	assert.Equal(t, spline.Pt(35, 12), spline.CellCenter(gridgraph.C(1, 3), 10, 8))
}

func TestSmoothPath_SegmentCounts(t *testing.T) {
	assert.Empty(t, spline.SmoothPath(nil, 10, 10))
	assert.Empty(t, spline.SmoothPath(gridgraph.Path{gridgraph.C(0, 0)}, 10, 10))
	assert.Len(t, spline.SmoothPath(gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(0, 1)}, 10, 10), 1)

	p := gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(1, 0), gridgraph.C(1, 1), gridgraph.C(2, 1), gridgraph.C(2, 2)}
	segs := spline.SmoothPath(p, 10, 10)
	require.Len(t, segs, len(p)-1)
	for i := 0; i+1 < len(segs); i++ {
		assert.Equal(t, segs[i].P2, segs[i+1].P1, "segments %d and %d must join", i, i+1)
	}
}

func TestSmooth_ControlPoints(t *testing.T) {
	segs := spline.SmoothPath(gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(0, 1)}, 10, 10)
	require.Len(t, segs, 1)
	s := segs[0]

	// boundary points repeat: tangent (15-5)*0.5/6
	assertPoint(t, spline.Pt(5, 5), s.P1)
	assertPoint(t, spline.Pt(5+10.0/12, 5), s.CP1)
	assertPoint(t, spline.Pt(15-10.0/12, 5), s.CP2)
	assertPoint(t, spline.Pt(15, 5), s.P2)
	assert.InDelta(t, 10, s.Length, eps)
}

func TestSmooth_Options(t *testing.T) {
	pts := []spline.Point{spline.Pt(0, 0), spline.Pt(10, 0), spline.Pt(10, 10)}

	flat := spline.Smooth(pts, &spline.Options{Tension: 0})
	require.Len(t, flat, 2)
	assert.Equal(t, flat[0].P1, flat[0].CP1)
	assert.Equal(t, flat[0].P2, flat[0].CP2)
	assert.InDelta(t, 10, flat[0].Length, eps)

	six := spline.Smooth(pts, nil)
	three := spline.Smooth(pts, &spline.Options{Tension: 0.5, Denominator: 3})
	// denominator 3 pulls control points twice as far along the tangent
	assert.InDelta(t, 2*(six[1].CP1.Y-six[1].P1.Y), three[1].CP1.Y-three[1].P1.Y, eps)

	// zero-valued fields fall back to defaults
	assert.Equal(t, six, spline.Smooth(pts, &spline.Options{Tension: 0.5}))
}

func TestSmooth_LengthAtLeastChord(t *testing.T) {
	p := bfs.FindPath(gridgraph.MustGrid([][]int{
		{1, 1, 1, 1},
		{0, 0, 0, 1},
		{1, 1, 1, 1},
	}), gridgraph.C(0, 0), gridgraph.C(2, 0))
	require.True(t, p.Found())

	for i, s := range spline.SmoothPath(p, 20, 20) {
		assert.GreaterOrEqual(t, s.Length+eps, s.P1.Dist(s.P2), "segment %d", i)
	}
}

func TestPointAtProgress_Endpoints(t *testing.T) {
	p := gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(1, 0), gridgraph.C(1, 1), gridgraph.C(2, 1), gridgraph.C(2, 2)}
	segs := spline.SmoothPath(p, 10, 10)

	start, ok := spline.PointAtProgress(segs, 0)
	require.True(t, ok)
	assertPoint(t, spline.CellCenter(p[0], 10, 10), start.Point)

	end, ok := spline.PointAtProgress(segs, 1)
	require.True(t, ok)
	assertPoint(t, spline.CellCenter(p[len(p)-1], 10, 10), end.Point)

	// out-of-range progress is clamped
	below, _ := spline.PointAtProgress(segs, -3)
	above, _ := spline.PointAtProgress(segs, 7)
	assert.Equal(t, start, below)
	assert.Equal(t, end, above)

	_, ok = spline.PointAtProgress(nil, 0.5)
	assert.False(t, ok)
}

func TestPointAtProgress_Heading(t *testing.T) {
	east := spline.SmoothPath(gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(0, 1)}, 10, 10)
	pose, ok := spline.PointAtProgress(east, 0.5)
	require.True(t, ok)
	assertPoint(t, spline.Pt(10, 5), pose.Point)
	assert.InDelta(t, 0, pose.Angle, eps)

	south := spline.SmoothPath(gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(1, 0)}, 10, 10)
	pose, _ = spline.PointAtProgress(south, 0.5)
	assert.InDelta(t, math.Pi/2, pose.Angle, eps)

	west := spline.SmoothPath(gridgraph.Path{gridgraph.C(0, 1), gridgraph.C(0, 0)}, 10, 10)
	pose, _ = spline.PointAtProgress(west, 1)
	assert.InDelta(t, math.Pi, math.Abs(pose.Angle), eps)
}

func TestPointAtProgress_SkipsZeroLengthSegments(t *testing.T) {
	line := func(a, b spline.Point) spline.Segment {
		d := b.Sub(a)
		return spline.Segment{P1: a, CP1: a.Add(d.Scale(1.0 / 3)), CP2: a.Add(d.Scale(2.0 / 3)), P2: b, Length: a.Dist(b)}
	}
	segs := []spline.Segment{
		line(spline.Pt(0, 0), spline.Pt(10, 0)),
		{P1: spline.Pt(10, 0), CP1: spline.Pt(10, 0), CP2: spline.Pt(10, 0), P2: spline.Pt(10, 0)},
		line(spline.Pt(10, 0), spline.Pt(20, 0)),
	}

	mid, _ := spline.PointAtProgress(segs, 0.5)
	assertPoint(t, spline.Pt(10, 0), mid.Point)
	q, _ := spline.PointAtProgress(segs, 0.75)
	assertPoint(t, spline.Pt(15, 0), q.Point)
	assert.False(t, math.IsNaN(q.Angle))

	// every segment degenerate: stay at the only point
	still := spline.Smooth([]spline.Point{spline.Pt(3, 3), spline.Pt(3, 3)}, nil)
	pose, ok := spline.PointAtProgress(still, 0.4)
	require.True(t, ok)
	assert.Equal(t, spline.Pt(3, 3), pose.Point)
	assert.Equal(t, 0.0, pose.Angle)
}

func TestSegment_AtEndpointsExact(t *testing.T) {
	s := spline.Segment{P1: spline.Pt(0.1, 0.7), CP1: spline.Pt(0.3, 1.9), CP2: spline.Pt(2.2, 0.3), P2: spline.Pt(3.3, 0.1)}
	assert.Equal(t, s.P1, s.At(0))
	assert.Equal(t, s.P2, s.At(1))
}

func TestSmooth_RepeatedPointHasZeroLength(t *testing.T) {
	segs := spline.Smooth([]spline.Point{spline.Pt(3, 3), spline.Pt(3, 3)}, nil)
	require.Len(t, segs, 1)
	assert.Equal(t, 0.0, segs[0].Length)
	assert.Equal(t, 0.0, spline.TotalLength(segs))

	for _, p := range []float64{0, 0.25, 0.4, 1} {
		pose, ok := spline.PointAtProgress(segs, p)
		require.True(t, ok)
		assert.Equal(t, spline.Pt(3, 3), pose.Point, "t=%v", p)
	}
	assert.Equal(t, []spline.Point{spline.Pt(3, 3)}, spline.Trace(segs, 1, 0))
}

func TestTrace(t *testing.T) {
	segs := spline.SmoothPath(gridgraph.Path{gridgraph.C(0, 0), gridgraph.C(0, 1)}, 10, 10)

	assert.Nil(t, spline.Trace(nil, 1, 5))
	assert.Equal(t, []spline.Point{spline.Pt(5, 5)}, spline.Trace(segs, 0, 5))

	full := spline.Trace(segs, 1, 5)
	require.Len(t, full, 6)
	assertPoint(t, spline.Pt(15, 5), full[len(full)-1])

	half := spline.Trace(segs, 0.5, 0)
	require.Len(t, half, 1+spline.DefaultTraceSteps)
	assertPoint(t, spline.Pt(10, 5), half[len(half)-1])
	for i := 1; i < len(half); i++ {
		assert.Greater(t, half[i].X, half[i-1].X, "trace must advance")
	}
}

func TestMarkersAndIndicators(t *testing.T) {
	m := spline.Markers(0.9, 3, 0.15)
	require.Len(t, m, 3)
	assert.InDelta(t, 0.9, m[0], eps)
	assert.InDelta(t, 0.05, m[1], eps)
	assert.InDelta(t, 0.2, m[2], eps)
	assert.Nil(t, spline.Markers(0.5, 0, 0.1))

	two := make([]spline.Segment, 2)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 2.0 / 3}, spline.Indicators(two), eps)
	assert.Len(t, spline.Indicators(make([]spline.Segment, 12)), 5)
	assert.Empty(t, spline.Indicators(nil))
}

func TestEaseInOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, spline.EaseInOutCubic(0))
	assert.InDelta(t, 0.5, spline.EaseInOutCubic(0.5), eps)
	assert.Equal(t, 1.0, spline.EaseInOutCubic(1))
	assert.InDelta(t, 0.032, spline.EaseInOutCubic(0.2), eps)
	assert.Less(t, spline.EaseInOutCubic(0.3), spline.EaseInOutCubic(0.31))
}
