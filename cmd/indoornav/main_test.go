package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoornav/internal/logging"
	"github.com/katalvlaran/indoornav/navigator"
)

const (
	floorPath = "../../configs/floor.json"
	refsPath  = "../../configs/roofrefs.json"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "indoornav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseArgs_FlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, `
grid: floor.json
order: snew
viewer:
  fps: 10
  duration: 2s
`)
	cfg, q, err := parseArgs([]string{"-config", path, "-fps", "60", "-from", "A1", "-to", "Kitchen", "-view"})
	require.NoError(t, err)

	assert.Equal(t, "floor.json", cfg.GridPath)
	assert.Equal(t, "snew", cfg.Order)
	assert.Equal(t, 60, cfg.Viewer.FPS)
	assert.Equal(t, 2*time.Second, cfg.Viewer.Duration)
	assert.Equal(t, 10.0, cfg.CellWidth, "defaults survive a partial file")
	assert.Equal(t, Query{From: "A1", To: "Kitchen", View: true}, q)
}

func TestParseArgs_SampleConfig(t *testing.T) {
	cfg, _, err := parseArgs([]string{"-config", "../../configs/indoornav.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "configs/floor.json", cfg.GridPath)
	assert.Equal(t, "stdout", cfg.Tracing.Exporter)
	assert.Equal(t, 3*time.Second, cfg.Viewer.Duration)
}

func TestParseArgs_Errors(t *testing.T) {
	_, _, err := parseArgs([]string{"-from", "A1"})
	assert.ErrorContains(t, err, "grid path is required")

	_, _, err = parseArgs([]string{"-grid", floorPath, "-order", "NNEW"})
	assert.Error(t, err)

	_, _, err = parseArgs([]string{"-config", writeConfig(t, "grid: x.json\nspeed: 3\n")})
	assert.ErrorContains(t, err, "speed")

	_, _, err = parseArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorContains(t, err, "read config")
}

func runQuery(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("INDOORNAV_TRACING_ENABLED", "false")
	cfg, q, err := parseArgs(append([]string{"-grid", floorPath, "-refs", refsPath}, args...))
	require.NoError(t, err)

	var out bytes.Buffer
	log := logging.New(logging.Config{Level: "error", Writer: &out})
	err = run(context.Background(), cfg, q, log, &out)
	return out.String(), err
}

func TestRun_Route(t *testing.T) {
	out, err := runQuery(t, "-from", "Reception", "-to", "A101")
	require.NoError(t, err)
	assert.Contains(t, out, "Reception → A101: 6 steps")
	assert.Contains(t, out, "A1 B1 C1 C2 C3 D3 E3")
}

func TestRun_Scan(t *testing.T) {
	out, err := runQuery(t, "-from", "A1", "-scan", `{"type":"roofRef","code":"A101"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "A1 → A101: 6 steps")

	_, err = runQuery(t, "-from", "A1", "-scan", `{"type":"roofRef","code":"Z9"}`)
	assert.ErrorContains(t, err, "destination")
}

func TestRun_NoRoute(t *testing.T) {
	out, err := runQuery(t, "-from", "Reception", "-to", "Storage")
	require.ErrorIs(t, err, navigator.ErrNoRoute)
	assert.Contains(t, out, "Reception → Storage: no route")
}

func TestRun_MissingEndpoints(t *testing.T) {
	_, err := runQuery(t, "-to", "Kitchen")
	assert.ErrorContains(t, err, "-from")
	_, err = runQuery(t, "-from", "Kitchen")
	assert.ErrorContains(t, err, "-to")
}

func TestRun_List(t *testing.T) {
	out, err := runQuery(t, "-list")
	require.NoError(t, err)
	assert.Contains(t, out, "places: 5")
	assert.Contains(t, out, "Reception")
	assert.Contains(t, out, "roof references: 4")

	codes := []string{"A2", "A10", "A101", "B1"}
	last := -1
	for _, code := range codes {
		idx := strings.Index(out, "  "+code+" ")
		require.Greater(t, idx, last, "%s out of order in\n%s", code, out)
		last = idx
	}
}
