package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/snake/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	require.Nil(t, om)

	// All methods are no-ops on nil.
	assert.NoError(t, om.WriteSession(SessionRecord{}))
	assert.NoError(t, om.WritePerf(PerfStats{}, 0))
	assert.NoError(t, om.WriteConfig(nil))
	assert.NoError(t, om.Close())
	assert.Empty(t, om.Dir())
}

func TestOutputManagerSessionsHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	require.NoError(t, om.WriteSession(SessionRecord{SessionID: "a", Score: 3, Cause: "wall"}))
	require.NoError(t, om.WriteSession(SessionRecord{SessionID: "b", Score: 7, Cause: "self"}))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "sessions.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "session_id"))

	var rows []SessionRecord
	require.NoError(t, gocsv.UnmarshalBytes(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[1].SessionID)
	assert.Equal(t, 7, rows[1].Score)
	assert.Equal(t, "self", rows[1].Cause)
}

func TestOutputManagerPerf(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	stats := PerfStats{PhasePct: map[string]float64{PhaseStep: 12.5}}
	require.NoError(t, om.WritePerf(stats, 50))
	require.NoError(t, om.WritePerf(stats, 100))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "tick,"))
	assert.True(t, strings.HasPrefix(lines[2], "100,"))
}

func TestOutputManagerWriteConfig(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	require.NoError(t, err)
	defer om.Close()

	require.NoError(t, om.WriteConfig(cfg))

	back, err := config.Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, cfg.Game, back.Game)
}

func TestOutputManagerCloseTwice(t *testing.T) {
	om, err := NewOutputManager(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, om.WriteSession(SessionRecord{SessionID: "a"}))
	require.NoError(t, om.Close())
	assert.NoError(t, om.Close())
}
