// Package viewer animates a route in the terminal.
//
// Each grid cell is drawn two columns wide so cells look roughly square.
// The whole route is drawn faintly, the part travelled so far brightly, and
// an arrow shows the current heading. When the animation reaches the end an
// optional Chime plays once.
package viewer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/indoornav/floorplan"
	"github.com/katalvlaran/indoornav/gridgraph"
	"github.com/katalvlaran/indoornav/internal/logging"
	"github.com/katalvlaran/indoornav/navigator"
	"github.com/katalvlaran/indoornav/spline"
)

// cellCols is the terminal width of one grid cell.
const cellCols = 2

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 70, 70))
	styleRoute   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(59, 130, 246))
	styleTrace   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(29, 78, 216)).Bold(true)
	stylePulse   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleArrow   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleNode    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnd     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// Glyphs.
const (
	glyphWall  = '█'
	glyphFloor = '·'
	glyphRoute = '░'
	glyphTrace = '▓'
	glyphPulse = '•'
	glyphStart = 'S'
	glyphEnd   = 'E'
)

// Chime is played when the animation arrives.
type Chime interface {
	Play()
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithChime plays c on arrival.
func WithChime(c Chime) Option { return func(v *Viewer) { v.chime = c } }

// WithNodes marks named places with the first letter of their name.
func WithNodes(nodes []floorplan.Node) Option { return func(v *Viewer) { v.nodes = nodes } }

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option { return func(v *Viewer) { v.log = logging.OrNoop(l) } }

// Viewer draws one route over one grid.
type Viewer struct {
	screen tcell.Screen
	grid   *gridgraph.Grid
	route  *navigator.Route
	cellW  float64
	cellH  float64

	nodes []floorplan.Node
	chime Chime
	log   logging.Logger
}

// New returns a Viewer drawing route on screen. cellW and cellH are the
// rendering cell size the route was smoothed with.
func New(screen tcell.Screen, grid *gridgraph.Grid, route *navigator.Route, cellW, cellH float64, opts ...Option) *Viewer {
	v := &Viewer{
		screen: screen,
		grid:   grid,
		route:  route,
		cellW:  cellW,
		cellH:  cellH,
		log:    logging.Noop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Frame draws the scene at progress in [0,1] and shows it.
func (v *Viewer) Frame(progress float64) {
	v.screen.Clear()
	v.drawGrid()
	v.drawNodes()
	if v.route.Found() {
		v.drawRoute(progress)
	}
	v.drawStatus(progress)
	v.screen.Show()
}

func (v *Viewer) drawGrid() {
	for r := 0; r < v.grid.Rows(); r++ {
		for c := 0; c < v.grid.Cols(); c++ {
			if v.grid.Walkable(gridgraph.C(r, c)) {
				v.putCell(gridgraph.C(r, c), glyphFloor, ' ', styleFloor)
			} else {
				v.putCell(gridgraph.C(r, c), glyphWall, glyphWall, styleWall)
			}
		}
	}
}

func (v *Viewer) drawNodes() {
	for _, n := range v.nodes {
		label := []rune(n.String())
		if len(label) == 0 {
			continue
		}
		v.putCell(n.Coord(), label[0], ' ', styleNode)
	}
}

func (v *Viewer) drawRoute(progress float64) {
	segs := v.route.Segments
	for _, c := range v.route.Path {
		v.putCell(c, glyphRoute, glyphRoute, styleRoute)
	}
	for _, p := range spline.Trace(segs, progress, 0) {
		v.putCell(v.cellOf(p), glyphTrace, glyphTrace, styleTrace)
	}
	for _, t := range spline.Indicators(segs) {
		if pose, ok := spline.PointAtProgress(segs, t); ok && t > progress {
			v.putCell(v.cellOf(pose.Point), Arrow(pose.Angle), glyphRoute, styleRoute)
		}
	}
	for _, t := range spline.Markers(progress, 3, 0.15) {
		if pose, ok := spline.PointAtProgress(segs, t); ok {
			v.putCell(v.cellOf(pose.Point), glyphPulse, glyphRoute, stylePulse)
		}
	}

	v.putCell(v.route.Path[0], glyphStart, ' ', styleEnd)
	v.putCell(v.route.Path[len(v.route.Path)-1], glyphEnd, ' ', styleEnd)
	if pose, ok := v.route.PoseAt(progress); ok {
		v.putCell(v.cellOf(pose.Point), Arrow(pose.Angle), ' ', styleArrow)
	}
}

func (v *Viewer) drawStatus(progress float64) {
	y := v.grid.Rows() + 1
	var line string
	style := styleStatus
	switch {
	case v.route == nil:
		line = "no route selected"
		style = styleWarning
	case !v.route.Found():
		line = fmt.Sprintf("%s → %s: no route", v.route.From, v.route.To)
		style = styleWarning
	default:
		line = fmt.Sprintf("%s → %s  %d steps  %.0f units  %3.0f%%",
			v.route.From, v.route.To, v.route.Steps(), v.route.Length, progress*100)
	}
	v.putText(0, y, line, style)
	v.putText(0, y+1, "[q] quit  [r] replay", styleStatus)
}

// cellOf maps a rendering-space point back to its grid cell.
func (v *Viewer) cellOf(p spline.Point) gridgraph.Coord {
	return gridgraph.C(int(math.Floor(p.Y/v.cellH)), int(math.Floor(p.X/v.cellW)))
}

func (v *Viewer) putCell(c gridgraph.Coord, left, right rune, style tcell.Style) {
	if !v.grid.InBounds(c) {
		return
	}
	x := c.Col * cellCols
	v.screen.SetContent(x, c.Row, left, nil, style)
	v.screen.SetContent(x+1, c.Row, right, nil, style)
}

func (v *Viewer) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Arrow picks the arrow glyph closest to angle, measured like math.Atan2
// with y growing downwards.
func Arrow(angle float64) rune {
	arrows := [...]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

// Run animates the route over duration at fps frames per second, then keeps
// the final frame until the user quits or ctx ends. 'r' replays.
func (v *Viewer) Run(ctx context.Context, duration time.Duration, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	if duration <= 0 {
		duration = 3 * time.Second
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	start := time.Now()
	arrived := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
					start, arrived = time.Now(), false
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		case <-ticker.C:
			linear := math.Min(1, float64(time.Since(start))/float64(duration))
			v.Frame(spline.EaseInOutCubic(linear))
			if linear >= 1 && !arrived {
				arrived = true
				if v.chime != nil && v.route.Found() {
					v.chime.Play()
				}
				v.log.Debug(ctx, "route animation finished")
			}
		}
	}
}
