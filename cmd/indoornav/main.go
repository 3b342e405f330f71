// Command indoornav finds and draws walking routes on an indoor floor plan.
//
//	indoornav -config configs/indoornav.yaml -from Reception -to A101
//	indoornav -grid configs/floor.json -from B3 -to "4,5" -view -sound
//	indoornav -config configs/indoornav.yaml -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/indoornav/floorplan"
	"github.com/katalvlaran/indoornav/gridgraph"
	"github.com/katalvlaran/indoornav/internal/logging"
	"github.com/katalvlaran/indoornav/internal/observability"
	"github.com/katalvlaran/indoornav/internal/viewer"
	"github.com/katalvlaran/indoornav/navigator"
)

func main() {
	cfg, q, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logging.New(logging.Config{Level: envOr("LOG_LEVEL", cfg.LogLevel), Format: envOr("LOG_FORMAT", cfg.LogFormat)})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, q, log, os.Stdout); err != nil {
		log.Error(ctx, "indoornav failed", logging.Err(err))
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// run loads the floor, wires metrics and tracing, and serves one query.
func run(ctx context.Context, cfg Config, q Query, log logging.Logger, out io.Writer) error {
	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(cfg.Tracing), log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	collector, err := observability.NewCollector(nil)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	if srv := serveMetrics(ctx, cfg.MetricsAddr, collector, log); srv != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	plan, refs, err := loadFloor(cfg)
	if err != nil {
		return err
	}
	order, err := gridgraph.ParseDirectionOrder(cfg.Order)
	if err != nil {
		return err
	}
	session, err := navigator.New(plan, refs,
		navigator.WithLogger(log),
		navigator.WithRecorder(collector),
		navigator.WithCellSize(cfg.CellWidth, cfg.CellHeight),
		navigator.WithSplineOptions(cfg.SplineOptions()),
		navigator.WithSnapBlocked(cfg.SnapBlocked),
		navigator.WithDirectionOrder(order),
	)
	if err != nil {
		return err
	}

	if q.List {
		printDirectory(out, session.Directory(), plan.Stats())
		return nil
	}

	route, err := query(ctx, session, q)
	if route == nil {
		return err
	}
	if !q.View {
		printRoute(out, route)
		return err
	}
	if errors.Is(err, navigator.ErrNoRoute) {
		log.Warn(ctx, "no route, showing floor only", logging.Err(err))
	}
	return view(ctx, cfg, session, route, log)
}

func loadFloor(cfg Config) (*floorplan.Plan, []floorplan.RoofReference, error) {
	plan, err := floorplan.Load(cfg.GridPath)
	if err != nil {
		return nil, nil, err
	}
	if cfg.RoofRefsPath == "" {
		return plan, nil, nil
	}
	refs, err := floorplan.LoadRoofRefs(cfg.RoofRefsPath)
	if err != nil {
		return nil, nil, err
	}
	return plan, refs, nil
}

// query resolves the endpoints and routes between them. A scan payload, when
// given, replaces -to.
func query(ctx context.Context, s *navigator.Session, q Query) (*navigator.Route, error) {
	if q.From == "" {
		return nil, errors.New("a start location is required (-from)")
	}
	if q.Scan == "" {
		if q.To == "" {
			return nil, errors.New("a destination is required (-to or -scan)")
		}
		return s.RouteQuery(ctx, q.From, q.To)
	}

	payload, err := floorplan.ParseScan([]byte(q.Scan))
	if err != nil {
		return nil, err
	}
	to, err := s.Directory().ResolveScan(payload)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	from, err := s.Resolve(q.From)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	return s.Route(ctx, from, to)
}

func printRoute(w io.Writer, r *navigator.Route) {
	if !r.Found() {
		fmt.Fprintf(w, "%s → %s: no route\n", r.From, r.To)
		return
	}
	fmt.Fprintf(w, "%s → %s: %d steps, %.1f units\n", r.From, r.To, r.Steps(), r.Length)
	if r.Snapped {
		fmt.Fprintf(w, "endpoints moved to %s and %s\n", r.Start.Label(), r.End.Label())
	}
	fmt.Fprintln(w, strings.Join(r.Path.Labels(), " "))
}

func printDirectory(w io.Writer, d *floorplan.Directory, st floorplan.Stats) {
	fmt.Fprintf(w, "places: %d (%d offices, %d rooms, %d other)\n", st.Total, st.Offices, st.Rooms, st.Others)
	for _, n := range d.SortedNodes() {
		fmt.Fprintf(w, "  %-16s %-8s %s\n", n.Name, n.Type, n.Coord().Label())
	}
	refs := d.SortedRoofRefs()
	if len(refs) == 0 {
		return
	}
	fmt.Fprintf(w, "roof references: %d\n", len(refs))
	for _, r := range refs {
		fmt.Fprintf(w, "  %-16s %s\n", r.Code, r.Coord().Label())
	}
}

func view(ctx context.Context, cfg Config, s *navigator.Session, route *navigator.Route, log logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	opts := []viewer.Option{
		viewer.WithLogger(log),
		viewer.WithNodes(s.Directory().Nodes()),
	}
	if cfg.Viewer.Sound {
		chime := viewer.NewSpeaker()
		if err := chime.Init(); err != nil {
			log.Warn(ctx, "audio unavailable, continuing without sound", logging.Err(err))
		} else {
			defer chime.Close()
			opts = append(opts, viewer.WithChime(chime))
		}
	}

	w, h := s.CellSize()
	return viewer.New(screen, s.Grid(), route, w, h, opts...).Run(ctx, cfg.Viewer.Duration, cfg.Viewer.FPS)
}

func serveMetrics(ctx context.Context, addr string, collector *observability.Collector, log logging.Logger) *http.Server {
	if addr == "" || collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn(ctx, "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(ctx, "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
