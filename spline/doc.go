// Package spline turns a grid route into a smooth curve for animation.
//
// A route of cell coordinates is mapped to rendering space (cell centres)
// and interpolated with a Catmull-Rom spline, expressed as one cubic Bezier
// segment per consecutive pair of cells. Each segment carries an arc length
// estimate so that a single progress scalar in [0,1] can be mapped to a
// point and heading anywhere along the whole curve.
//
// Everything here is pure: no state, no errors, safe for concurrent use.
// Degenerate input (fewer than two points) simply yields no segments.
package spline
