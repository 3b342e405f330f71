package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/indoornav/gridgraph"
	"github.com/katalvlaran/indoornav/internal/observability"
	"github.com/katalvlaran/indoornav/navigator"
	"github.com/katalvlaran/indoornav/spline"
)

// Config captures everything the CLI needs. It is read from YAML first and
// explicitly set flags override it.
type Config struct {
	GridPath     string  `yaml:"grid"`
	RoofRefsPath string  `yaml:"roofRefs"`
	CellWidth    float64 `yaml:"cellWidth"`
	CellHeight   float64 `yaml:"cellHeight"`
	SnapBlocked  bool    `yaml:"snapBlocked"`
	Order        string  `yaml:"order"`

	Spline SplineConfig `yaml:"spline"`
	Viewer ViewerConfig `yaml:"viewer"`

	MetricsAddr string `yaml:"metricsAddr"`
	LogLevel    string `yaml:"logLevel"`
	LogFormat   string `yaml:"logFormat"`

	Tracing observability.TracingConfig `yaml:"tracing"`
}

// SplineConfig tunes route smoothing.
type SplineConfig struct {
	Tension     float64 `yaml:"tension"`
	Denominator float64 `yaml:"denominator"`
	Samples     int     `yaml:"samples"`
}

// ViewerConfig tunes the terminal animation.
type ViewerConfig struct {
	FPS      int           `yaml:"fps"`
	Duration time.Duration `yaml:"duration"`
	Sound    bool          `yaml:"sound"`
}

// Query is what the user asked for on this run.
type Query struct {
	From, To string
	Scan     string
	List     bool
	View     bool
}

func defaultConfig() Config {
	return Config{
		CellWidth:  navigator.DefaultCellSize,
		CellHeight: navigator.DefaultCellSize,
		Order:      gridgraph.OrderNSEW.String(),
		Spline: SplineConfig{
			Tension:     spline.DefaultTension,
			Denominator: spline.DefaultDenominator,
			Samples:     spline.DefaultSamples,
		},
		Viewer: ViewerConfig{
			FPS:      30,
			Duration: 3 * time.Second,
		},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// loadConfig reads path over the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.GridPath == "" {
		return errors.New("config: grid path is required")
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("config: cell size must be positive, got %gx%g", c.CellWidth, c.CellHeight)
	}
	if _, err := gridgraph.ParseDirectionOrder(c.Order); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Viewer.FPS <= 0 {
		return fmt.Errorf("config: viewer fps must be positive, got %d", c.Viewer.FPS)
	}
	if c.Viewer.Duration <= 0 {
		return fmt.Errorf("config: viewer duration must be positive, got %s", c.Viewer.Duration)
	}
	return nil
}

// SplineOptions converts the YAML block to smoothing options.
func (c Config) SplineOptions() *spline.Options {
	return &spline.Options{
		Tension:     c.Spline.Tension,
		Denominator: c.Spline.Denominator,
		Samples:     c.Spline.Samples,
	}
}

// parseArgs builds the run configuration from args: the -config file first,
// then every flag the user actually set.
func parseArgs(args []string) (Config, Query, error) {
	fs := flag.NewFlagSet("indoornav", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "Path to a YAML config file")
		gridPath   = fs.String("grid", "", "Path to the floor plan (.json, .yaml)")
		refsPath   = fs.String("refs", "", "Path to the roof reference file (.json, .yaml)")
		order      = fs.String("order", "", "Neighbour expansion order, e.g. NSEW or SNEW")
		snap       = fs.Bool("snap", false, "Move blocked endpoints to the nearest walkable cell")
		fps        = fs.Int("fps", 0, "Viewer frames per second")
		duration   = fs.Duration("duration", 0, "Viewer animation length")
		sound      = fs.Bool("sound", false, "Play a chime when the animation arrives")
		metrics    = fs.String("metrics-addr", "", "HTTP address for Prometheus /metrics; empty disables")
		q          Query
	)
	fs.StringVar(&q.From, "from", "", "Start: roof code, node id or name, \"row,col\" or a label like B3")
	fs.StringVar(&q.To, "to", "", "Destination, same forms as -from")
	fs.StringVar(&q.Scan, "scan", "", "Destination as a scan payload, e.g. {\"type\":\"roofRef\",\"code\":\"A101\"}")
	fs.BoolVar(&q.List, "list", false, "List named places and roof references")
	fs.BoolVar(&q.View, "view", false, "Animate the route in the terminal")

	if err := fs.Parse(args); err != nil {
		return Config{}, q, err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return cfg, q, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grid":
			cfg.GridPath = *gridPath
		case "refs":
			cfg.RoofRefsPath = *refsPath
		case "order":
			cfg.Order = *order
		case "snap":
			cfg.SnapBlocked = *snap
		case "fps":
			cfg.Viewer.FPS = *fps
		case "duration":
			cfg.Viewer.Duration = *duration
		case "sound":
			cfg.Viewer.Sound = *sound
		case "metrics-addr":
			cfg.MetricsAddr = *metrics
		}
	})
	return cfg, q, cfg.Validate()
}
