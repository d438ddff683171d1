package storage

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/delaysim/internal/dde"
)

func sampleRun() (RunMetadata, []float64, []dde.State) {
	meta := RunMetadata{
		ID:        "lotka_test",
		Model:     "lotka",
		Timestamp: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Algorithm: "rk45",
		Tolerance: 1e-6,
		Start:     0,
		End:       1,
		Points:    3,
	}
	times := []float64{0, 0.5, 1}
	states := []dde.State{{1, 2}, {1.25, 1.75}, {1.5, 1.5}}
	return meta, times, states
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	meta, times, states := sampleRun()
	runID, err := st.Save(meta, times, states)
	require.NoError(t, err)
	assert.Equal(t, "lotka_test", runID)

	loaded, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "lotka", loaded.Model)
	assert.Equal(t, "rk45", loaded.Algorithm)

	gotTimes, gotStates, err := st.LoadSolution(runID)
	require.NoError(t, err)
	require.Len(t, gotTimes, 3)
	require.Len(t, gotStates, 3)
	assert.Equal(t, 0.5, gotTimes[1])
	assert.Equal(t, dde.State{1.25, 1.75}, gotStates[1])
}

func TestSaveLengthMismatch(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	meta, times, states := sampleRun()
	_, err := st.Save(meta, times, states[:2])
	assert.Error(t, err)
}

func TestSaveGeneratesID(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	meta, times, states := sampleRun()
	meta.ID = ""
	runID, err := st.Save(meta, times, states)
	require.NoError(t, err)
	assert.Contains(t, runID, "lotka_")

	loaded, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, loaded.ID)
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	meta, times, states := sampleRun()
	_, err = st.Save(meta, times, states)
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "lotka_test", runs[0].ID)
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/delaysim-runs")
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestWriteCSVGolden(t *testing.T) {
	_, times, states := sampleRun()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, times, states))

	g := goldie.New(t)
	g.Assert(t, "solution_csv", buf.Bytes())
}
