package analysis

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macrostat/config"
	"macrostat/infra/errorx"
)

// writeSyntheticCSV builds a 30-row dataset where GDP is a random walk with
// drift (the drift dominates, so the level series is solidly non-stationary
// while its first difference is i.i.d. noise around the drift) and the other
// columns are i.i.d. noise around constants.
func writeSyntheticCSV(t *testing.T, dir string) string {
	t.Helper()
	rng := rand.New(rand.NewSource(42))

	const n = 30
	var b strings.Builder
	b.WriteString("year,GDP,population,longevity,mean_taxRate\n")
	gdp := 100.0
	for i := 0; i < n; i++ {
		gdp += 5 + rng.NormFloat64()
		fmt.Fprintf(&b, "%d,%.6f,%.6f,%.6f,%.6f\n",
			1990+i,
			gdp,
			50+rng.NormFloat64(),
			75+rng.NormFloat64(),
			30+rng.NormFloat64())
	}

	path := filepath.Join(dir, "macro.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Data = writeSyntheticCSV(t, dir)
	cfg.Plot = filepath.Join(dir, "panel.png")
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	runner := &Runner{Cfg: cfg, Out: &out}
	outcome, err := runner.Run()
	require.NoError(t, err)

	// level pass flags the drifting walk, difference pass clears it
	gdpLevel, ok := outcome.Levels.Result("GDP")
	require.True(t, ok)
	assert.False(t, gdpLevel.Stationary, "GDP at levels should carry a unit root")

	gdpDiff, ok := outcome.Differences.Result("ΔGDP")
	require.True(t, ok)
	assert.True(t, gdpDiff.Stationary, "ΔGDP should be stationary")

	assert.Len(t, outcome.Levels.Results, 4)
	assert.Len(t, outcome.Differences.Results, 4)

	text := out.String()
	assert.Contains(t, text, "LEVEL REGRESSION ANALYSIS")
	assert.Contains(t, text, "FIRST DIFFERENCE MODEL")
	assert.Contains(t, text, "ADF STATIONARITY TEST - LEVEL VARIABLES")
	assert.Contains(t, text, "ADF STATIONARITY TEST - FIRST DIFFERENCES")
	assert.Contains(t, text, "SUMMARY: Stationarity of Level Variables")
	assert.Contains(t, text, "SUMMARY: Stationarity of First Differences")
	assert.Contains(t, text, "FINAL SUMMARY")

	info, err := os.Stat(cfg.Plot)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunMissingColumnAbortsBeforeAnalysis(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("year,GDP,population\n2000,1,2\n2001,2,3\n"), 0o644))

	cfg := config.Default()
	cfg.Data = path
	cfg.Plot = filepath.Join(dir, "panel.png")

	var out bytes.Buffer
	_, err := (&Runner{Cfg: cfg, Out: &out}).Run()
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.MISSING_COLUMN))

	// nothing rendered on a schema violation
	_, statErr := os.Stat(cfg.Plot)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunDegenerateColumnAborts(t *testing.T) {
	dir := t.TempDir()

	var b strings.Builder
	b.WriteString("year,GDP,population,longevity,mean_taxRate\n")
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 30; i++ {
		// longevity is constant: zero variance
		fmt.Fprintf(&b, "%d,%.4f,%.4f,80.0,%.4f\n",
			1990+i, 100+rng.NormFloat64(), 50+rng.NormFloat64(), 30+rng.NormFloat64())
	}
	path := filepath.Join(dir, "flat.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	cfg := config.Default()
	cfg.Data = path
	cfg.Plot = filepath.Join(dir, "panel.png")

	var out bytes.Buffer
	_, err := (&Runner{Cfg: cfg, Out: &out}).Run()
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.DEGENERATE_SERIES))
}
